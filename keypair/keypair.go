// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"

	"github.com/bitmark-inc/registryd/account"
)

// KeyPair - seed and the keys generated from it
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := account.NewBase58Seed(test)
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}
	acc := privateKey.Account()

	keyPair := &KeyPair{
		Seed:       seed,
		Account:    acc,
		PrivateKey: privateKey,
	}

	rawKeyPair := &RawKeyPair{
		Seed:       seed,
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(acc.PublicKeyBytes()),
		PrivateKey: hex.EncodeToString(privateKey.Bytes()),
	}

	return rawKeyPair, keyPair, nil
}
