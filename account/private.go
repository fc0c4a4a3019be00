// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/registryd/fault"
)

// PrivateKey - signing half of a key pair
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromBytes - wrap a raw ed25519 private key
func PrivateKeyFromBytes(privateKeyBytes []byte, test bool) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(privateKeyBytes) {
		return nil, fault.InvalidKeyLength
	}
	k := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(k, privateKeyBytes)
	return &PrivateKey{
		Test:       test,
		PrivateKey: k,
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
		},
	}
}

// Bytes - the raw private key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
