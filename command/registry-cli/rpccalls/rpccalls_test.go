// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/background"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/keypair"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/server"
	"github.com/bitmark-inc/registryd/sequencer"
	"github.com/bitmark-inc/registryd/storage"
)

type testClient struct {
	store    *storage.Store
	bg       *background.T
	listener net.Listener
	client   *Client
	output   *bytes.Buffer
}

func setup(t *testing.T) *testClient {
	fixtures.SetupTestLogger()

	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	seq := sequencer.New(log, store, event.NewQueue(), 10, request.Authenticate)
	bg := background.Start(background.Processes{seq}, nil)

	c := counter.Counter(0)
	s := server.Create(log, "test", &c, seq)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	output := &bytes.Buffer{}
	return &testClient{
		store:    store,
		bg:       bg,
		listener: l,
		client:   newClient(conn, true, output),
		output:   output,
	}
}

func (tc *testClient) teardown() {
	tc.client.Close()
	tc.listener.Close()
	tc.bg.Stop()
	tc.store.Close()
	fixtures.TeardownTestLogger()
}

func makeKey(t *testing.T) *account.PrivateKey {
	_, kp, err := keypair.MakeRawKeyPair(true)
	if nil != err {
		t.Fatalf("make key pair error: %s", err)
	}
	return kp.PrivateKey
}

func TestKittyCalls(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	alice := makeKey(t)
	bob := makeKey(t)

	for i := 0; i < 2; i += 1 {
		reply, err := tc.client.CreateKitty(alice)
		assert.Nil(t, err, "create %d", i)
		assert.Equal(t, kitties.KittyId(i), reply.KittyId, "create %d id", i)
	}

	reply, err := tc.client.BreedKitty(alice, 1, 0)
	assert.Nil(t, err, "breed")
	assert.Equal(t, kitties.KittyId(2), reply.KittyId, "bred id")

	_, err = tc.client.BreedKitty(alice, 1, 1)
	assert.Equal(t, fault.SameKittyId.Error(), err.Error(), "same parents")

	_, err = tc.client.TransferKitty(bob, alice.Account(), 2)
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "not owner")

	_, err = tc.client.TransferKitty(alice, bob.Account(), 2)
	assert.Nil(t, err, "transfer")

	record, err := tc.client.GetKitty(2)
	assert.Nil(t, err, "get")
	assert.True(t, bob.Account().Equal(record.Owner), "new owner")
	assert.Equal(t, &kitties.Parents{Parent1: 1, Parent2: 0}, record.Parents, "parents")

	list, err := tc.client.ListKitties(0, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, 3, len(list.Kitties), "list count")
	assert.Equal(t, kitties.KittyId(3), list.NextKittyId, "next id")

	assert.Contains(t, tc.output.String(), "Kitty.Create", "verbose output")
}

func TestClaimCalls(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	alice := makeKey(t)
	bob := makeKey(t)
	data := claims.Claim("hello")

	_, err := tc.client.CreateClaim(alice, data)
	assert.Nil(t, err, "create")

	_, err = tc.client.CreateClaim(bob, data)
	assert.Equal(t, fault.ProofAlreadyExist.Error(), err.Error(), "duplicate")

	_, err = tc.client.TransferClaim(alice, data, bob.Account())
	assert.Nil(t, err, "transfer")

	proof, err := tc.client.GetClaim(data)
	assert.Nil(t, err, "get")
	assert.True(t, bob.Account().Equal(proof.Owner), "owner")

	_, err = tc.client.RevokeClaim(alice, data)
	assert.Equal(t, fault.NotClaimOwner.Error(), err.Error(), "old owner revoke")

	_, err = tc.client.RevokeClaim(bob, data)
	assert.Nil(t, err, "revoke")

	_, err = tc.client.GetClaim(data)
	assert.Equal(t, fault.ClaimNotExist.Error(), err.Error(), "revoked")
}

func TestNodeInfo(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	_, err := tc.client.CreateKitty(makeKey(t))
	assert.Nil(t, err, "create")

	info, err := tc.client.GetNodeInfo()
	assert.Nil(t, err, "info")
	assert.Equal(t, "test", info.Version, "version")
	assert.Equal(t, uint64(1), info.Block.Height, "height")
	assert.Equal(t, uint64(1), info.Requests.Applied, "applied")
}

func TestNextNonceIncreases(t *testing.T) {
	c := &Client{}

	last := c.nextNonce()
	for i := 0; i < 1000; i += 1 {
		n := c.nextNonce()
		assert.True(t, n > last, "nonce %d not above %d", n, last)
		last = n
	}

	// a clock behind the last nonce still moves forward
	c.nonce = ^uint64(0) - 1
	assert.Equal(t, ^uint64(0), c.nextNonce(), "nonce after clock")
}
