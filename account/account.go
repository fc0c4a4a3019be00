// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// enumeration of supported key algorithms
const (
	Nothing        = iota // zero keytype **Just for Testing**
	ED25519        = iota
	algorithmLimit = iota // one greater than last item
)

const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4

	nothingKeyLength = 2
)

// Account - the identity of a caller, a public key plus network flag
type Account struct {
	AccountInterface
}

// AccountInterface - operations common to all key algorithms
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// NothingAccount - cannot sign, used to make short fixed accounts in tests
type NothingAccount struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - decode the base58 text form: key code, public key, checksum
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	buffer := util.FromBase58(accountBase58Encoded)
	if 0 == len(buffer) {
		return nil, fault.CannotDecodeAccount
	}
	return parse(buffer, true)
}

// AccountFromBytes - decode the binary form as stored in the database
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	return parse(accountBytes, false)
}

func parse(buffer []byte, hasChecksum bool) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	end := len(buffer)
	if hasChecksum {
		end -= checksumLength
	}
	keyLength := end - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	if hasChecksum {
		checksum := sha3.Sum256(buffer[:end])
		if !bytes.Equal(checksum[:checksumLength], buffer[end:]) {
			return nil, fault.ChecksumMismatch
		}
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, buffer[keyVariantLength:end])

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != keyLength {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil

	case Nothing:
		if nothingKeyLength != keyLength {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &NothingAccount{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil

	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - convert the base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// IsZero - true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	if nil == account || nil == account.AccountInterface {
		return true
	}
	for _, b := range account.PublicKeyBytes() {
		if 0 != b {
			return false
		}
	}
	return true
}

// Equal - two accounts are the same caller
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// the key code byte followed by the raw public key
func packBytes(algorithm int, test bool, publicKey []byte) []byte {
	keyVariant := byte(algorithm<<algorithmShift) | publicKeyCode
	if test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, publicKey...)
}

func toBase58(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// ED25519
// -------

// KeyType - see enumeration above
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - the raw public key
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey
}

// CheckSignature - verify an ed25519 signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - binary form of the account
func (account *ED25519Account) Bytes() []byte {
	return packBytes(ED25519, account.Test, account.PublicKey)
}

// String - base58 form of the account
func (account *ED25519Account) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - the test network flag
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// Nothing
// -------

// KeyType - see enumeration above
func (account *NothingAccount) KeyType() int {
	return Nothing
}

// PublicKeyBytes - the raw public key
func (account *NothingAccount) PublicKeyBytes() []byte {
	return account.PublicKey
}

// CheckSignature - always fails, this key type cannot sign
func (account *NothingAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.InvalidSignature
}

// Bytes - binary form of the account
func (account *NothingAccount) Bytes() []byte {
	return packBytes(Nothing, account.Test, account.PublicKey)
}

// String - base58 form of the account
func (account *NothingAccount) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - base58 JSON form
func (account NothingAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - the test network flag
func (account NothingAccount) IsTesting() bool {
	return account.Test
}
