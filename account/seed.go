// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// seed layout: header(3) network(1) secret(32) checksum(4)
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedSecretLength   = 32
	seedChecksumLength = 4
	seedLength         = 3 + 1 + seedSecretLength + seedChecksumLength
)

// NewBase58Seed - create a new seed from secure random data
func NewBase58Seed(test bool) (string, error) {
	return newBase58Seed(rand.Reader, test)
}

func newBase58Seed(random io.Reader, test bool) (string, error) {
	secret := make([]byte, seedSecretLength)
	if _, err := io.ReadFull(random, secret); nil != err {
		return "", err
	}

	network := byte(0x00)
	if test {
		network = 0x01
	}
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, network)
	seed = append(seed, secret...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// PrivateKeyFromBase58Seed - derive the ed25519 key pair for a seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed := util.FromBase58(seedBase58Encoded)
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:len(seedHeader)]) {
		return nil, fault.InvalidSeedHeader
	}
	test := 0x01 == seed[len(seedHeader)]

	var secret [seedSecretLength]byte
	copy(secret[:], seed[len(seedHeader)+1:checksumStart])

	// the sealed index is 32 bytes, exactly an ed25519 seed
	derived := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &secret)

	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.NewKeyFromSeed(derived[:ed25519.SeedSize]),
	}, nil
}
