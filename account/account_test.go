// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
)

type accountTest struct {
	algorithm     int
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		algorithm:     account.ED25519,
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		algorithm:     account.ED25519,
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		algorithm:     account.ED25519,
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		algorithm:     account.ED25519,
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		algorithm:     account.ED25519,
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
	{
		algorithm:     account.Nothing,
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("12fa"),
		base58Account: "3MvykBZzN",
	},
	{
		algorithm:     account.Nothing,
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000"),
		base58Account: "3CUwbPENE",
	},
}

var testInvalidAccountFromBase58 = []struct {
	str string
	err error
}{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},    // checksum mismatch
	{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.InvalidKeyType},    // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotPublicKey},        // private key
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.NotPublicKey},         // truncated
	{"nF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.NotPublicKey},         // truncated
}

func TestValidBytes(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(test.algorithm<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", index) {
			continue
		}

		assert.Equal(t, buffer, acc.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.zero, acc.IsZero(), "%d: zero", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: base58", index)
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, test.algorithm, acc.KeyType(), "%d: key type", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "%d: public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: to base58", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}
		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON round trip", index)
		assert.True(t, acc.Equal(&a), "%d: equal after JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %s", index, test.str)
	}
}

func TestInvalidBytes(t *testing.T) {
	_, err := account.AccountFromBytes([]byte{})
	assert.Equal(t, fault.NotPublicKey, err, "empty")

	_, err = account.AccountFromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err, "short ed25519 key")

	_, err = account.AccountFromBytes([]byte{0x01, 0x01, 0x02, 0x03})
	assert.Equal(t, fault.InvalidKeyLength, err, "long nothing key")

	_, err = account.AccountFromBytes([]byte{0x01})
	assert.Equal(t, fault.InvalidKeyLength, err, "no key")
}

func TestEqual(t *testing.T) {
	a := &account.Account{AccountInterface: &account.NothingAccount{PublicKey: []byte{0, 1}}}
	b := &account.Account{AccountInterface: &account.NothingAccount{PublicKey: []byte{0, 1}}}
	c := &account.Account{AccountInterface: &account.NothingAccount{PublicKey: []byte{0, 2}}}
	d := &account.Account{AccountInterface: &account.NothingAccount{Test: true, PublicKey: []byte{0, 1}}}

	assert.True(t, a.Equal(b), "same key")
	assert.False(t, a.Equal(c), "different key")
	assert.False(t, a.Equal(d), "different network")
	assert.False(t, a.Equal(nil), "nil account")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
