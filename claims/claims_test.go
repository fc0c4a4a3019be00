// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/storage/mocks"
)

var testClaim = claims.Claim{0, 1}

type testRegistry struct {
	store *storage.Store
	block uint64
	r     *claims.Registry
}

func setup(t *testing.T) *testRegistry {
	fixtures.SetupTestLogger()

	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	tr := &testRegistry{
		store: store,
		block: 1,
	}
	tr.r = claims.New(
		logger.New(fixtures.LogCategory),
		claims.Handles{
			Proofs: store.Pool.Proofs,
		},
		func() uint64 { return tr.block },
	)
	return tr
}

func (tr *testRegistry) teardown() {
	tr.store.Close()
	fixtures.TeardownTestLogger()
}

func (tr *testRegistry) apply(t *testing.T, f func(storage.Transaction, event.Sink) error) ([]event.Event, error) {
	trx, err := tr.store.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	var b event.Buffer
	err = f(trx, &b)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return b.Events(), nil
}

func (tr *testRegistry) create(t *testing.T, caller *account.Account, claim claims.Claim) ([]event.Event, error) {
	return tr.apply(t, func(trx storage.Transaction, sink event.Sink) error {
		return tr.r.CreateClaim(trx, caller, claim, sink)
	})
}

func (tr *testRegistry) revoke(t *testing.T, caller *account.Account, claim claims.Claim) ([]event.Event, error) {
	return tr.apply(t, func(trx storage.Transaction, sink event.Sink) error {
		return tr.r.RevokeClaim(trx, caller, claim, sink)
	})
}

func (tr *testRegistry) transfer(t *testing.T, caller *account.Account, claim claims.Claim, dest *account.Account) ([]event.Event, error) {
	return tr.apply(t, func(trx storage.Transaction, sink event.Sink) error {
		return tr.r.TransferClaim(trx, caller, claim, dest, sink)
	})
}

func TestCreateClaim(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	tr.block = 3
	events, err := tr.create(t, fixtures.Account1, testClaim)
	assert.Nil(t, err, "wrong create error")

	proof, ok := tr.r.Claim(testClaim)
	assert.True(t, ok, "claim not found")
	assert.True(t, fixtures.Account1.Equal(proof.Owner), "wrong owner")
	assert.Equal(t, uint64(3), proof.Block, "wrong block")

	assert.Equal(t, []event.Event{
		claims.ClaimCreated{
			Who:   fixtures.Account1,
			Claim: testClaim,
		},
	}, events, "wrong events")
}

func TestCreateClaimAlreadyExists(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	_, err := tr.create(t, fixtures.Account1, testClaim)
	assert.Nil(t, err, "first create")

	events, err := tr.create(t, fixtures.Account1, testClaim)
	assert.Equal(t, fault.ProofAlreadyExist, err, "same owner")
	assert.Nil(t, events, "events on failure")

	_, err = tr.create(t, fixtures.Account2, testClaim)
	assert.Equal(t, fault.ProofAlreadyExist, err, "different owner")
}

func TestClaimLength(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	_, err := tr.create(t, fixtures.Account1, claims.Claim{})
	assert.Equal(t, fault.ClaimEmpty, err, "empty claim")

	long := make(claims.Claim, claims.MaximumClaimLength+1)
	_, err = tr.create(t, fixtures.Account1, long)
	assert.Equal(t, fault.ClaimTooLong, err, "long claim")
	assert.True(t, fault.IsErrLength(err), "boundary rejection class")

	_, err = tr.revoke(t, fixtures.Account1, long)
	assert.Equal(t, fault.ClaimTooLong, err, "long claim revoke")

	_, err = tr.create(t, fixtures.Account1, long[:claims.MaximumClaimLength])
	assert.Nil(t, err, "maximum length claim")
}

func TestRevokeClaim(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	_, err := tr.revoke(t, fixtures.Account1, testClaim)
	assert.Equal(t, fault.ClaimNotExist, err, "never created")

	_, err = tr.create(t, fixtures.Account1, testClaim)
	assert.Nil(t, err, "create")

	_, err = tr.revoke(t, fixtures.Account2, testClaim)
	assert.Equal(t, fault.NotClaimOwner, err, "wrong owner")

	events, err := tr.revoke(t, fixtures.Account1, testClaim)
	assert.Nil(t, err, "revoke")
	assert.Equal(t, []event.Event{
		claims.ClaimRevoked{
			Who:   fixtures.Account1,
			Claim: testClaim,
		},
	}, events, "wrong events")

	_, ok := tr.r.Claim(testClaim)
	assert.False(t, ok, "revoked claim still live")

	_, err = tr.revoke(t, fixtures.Account1, testClaim)
	assert.Equal(t, fault.ClaimNotExist, err, "revoked twice")

	// the key is free for anyone
	tr.block = 9
	_, err = tr.create(t, fixtures.Account2, testClaim)
	assert.Nil(t, err, "create after revoke")
	proof, _ := tr.r.Claim(testClaim)
	assert.True(t, fixtures.Account2.Equal(proof.Owner), "new owner")
	assert.Equal(t, uint64(9), proof.Block, "new block")
}

func TestTransferClaim(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	_, err := tr.transfer(t, fixtures.Account1, testClaim, fixtures.Account2)
	assert.Equal(t, fault.ClaimNotExist, err, "never created")

	tr.block = 4
	_, err = tr.create(t, fixtures.Account1, testClaim)
	assert.Nil(t, err, "create")

	_, err = tr.transfer(t, fixtures.Account2, testClaim, fixtures.Account2)
	assert.Equal(t, fault.NotClaimOwner, err, "wrong owner")

	tr.block = 8
	events, err := tr.transfer(t, fixtures.Account1, testClaim, fixtures.Account2)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, []event.Event{
		claims.ClaimTransferred{
			Who:   fixtures.Account1,
			Claim: testClaim,
			Dest:  fixtures.Account2,
		},
	}, events, "wrong events")

	proof, ok := tr.r.Claim(testClaim)
	assert.True(t, ok, "claim")
	assert.True(t, fixtures.Account2.Equal(proof.Owner), "owner after transfer")
	assert.Equal(t, uint64(4), proof.Block, "transfer must keep the creation block")

	_, err = tr.revoke(t, fixtures.Account1, testClaim)
	assert.Equal(t, fault.NotClaimOwner, err, "old owner revoke")

	_, err = tr.revoke(t, fixtures.Account2, testClaim)
	assert.Nil(t, err, "new owner revoke")
}

func TestList(t *testing.T) {
	tr := setup(t)
	defer tr.teardown()

	keys := []claims.Claim{{0x01}, {0x01, 0x00}, {0x02}, {0xff, 0xff}}
	for _, k := range keys {
		_, err := tr.create(t, fixtures.Account1, k)
		assert.Nil(t, err, "create %x", []byte(k))
	}

	got := make([]claims.Claim, 0, len(keys))
	var start claims.Claim
	for i := 0; i < 10; i += 1 {
		entries, next, err := tr.r.List(start, 3)
		assert.Nil(t, err, "list")
		for _, e := range entries {
			got = append(got, e.Claim)
			assert.True(t, fixtures.Account1.Equal(e.Owner), "owner")
		}
		if nil == next {
			break
		}
		start = next
	}
	assert.Equal(t, keys, got, "all claims in key order")

	_, _, err := tr.r.List(nil, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestFailureStagesNothing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockHandle(ctl)
	trx := mocks.NewMockTransaction(ctl)

	r := claims.New(
		logger.New(fixtures.LogCategory),
		claims.Handles{
			Proofs: p,
		},
		func() uint64 { return 1 },
	)

	var b event.Buffer

	trx.EXPECT().Has(p, []byte(testClaim)).Return(true).Times(1)
	err := r.CreateClaim(trx, fixtures.Account1, testClaim, &b)
	assert.Equal(t, fault.ProofAlreadyExist, err, "exists")

	owner := append([]byte{0, 0, 0, 0, 0, 0, 0, 1}, fixtures.Account2.Bytes()...)
	trx.EXPECT().GetNB(p, []byte(testClaim)).Return(uint64(1), owner[8:]).Times(2)
	err = r.RevokeClaim(trx, fixtures.Account1, testClaim, &b)
	assert.Equal(t, fault.NotClaimOwner, err, "revoke by non owner")
	err = r.TransferClaim(trx, fixtures.Account1, testClaim, fixtures.Account3, &b)
	assert.Equal(t, fault.NotClaimOwner, err, "transfer by non owner")

	assert.Equal(t, 0, len(b.Events()), "events on failure")
}

func TestClaimJSON(t *testing.T) {
	buffer, err := json.Marshal(claims.ClaimCreated{
		Who:   fixtures.Account1,
		Claim: testClaim,
	})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"who":"`+fixtures.Account1.String()+`","claim":"0001"}`, string(buffer), "wrong JSON")

	var c claims.Claim
	assert.Nil(t, json.Unmarshal([]byte(`"0a0b"`), &c), "unmarshal")
	assert.Equal(t, claims.Claim{0x0a, 0x0b}, c, "decoded claim")
}
