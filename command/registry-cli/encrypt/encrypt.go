// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package encrypt - password protection of identity seeds
//
// The password is stretched with argon2i and the seed is stored as
// AES-CBC ciphertext with a length prefix and a random IV.
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/keypair"
)

const (
	minimumPasswordLength = 8
	maximumSeedLength     = 1024
	countBytes            = 2
)

// Identity - one named key pair with its seed encrypted
type Identity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Seed        string `json:"seed"`
	Salt        string `json:"salt"`
}

// MakeIdentity - encrypt a seed under a password
//
// an empty seed generates a new key pair
func MakeIdentity(name string, description string, seed string, password string, test bool) (*Identity, *keypair.KeyPair, error) {
	if len(password) < minimumPasswordLength {
		return nil, nil, fault.InvalidIdentityPassword
	}

	var keyPair *keypair.KeyPair
	var err error
	if "" == seed {
		_, keyPair, err = keypair.MakeRawKeyPair(test)
	} else {
		_, keyPair, err = keypair.MakeRawKeyPairFromSeed(seed)
	}
	if nil != err {
		return nil, nil, err
	}

	salt, key, err := hashPassword(password)
	if nil != err {
		return nil, nil, err
	}

	encrypted, err := encryptSeed(keyPair.Seed, key)
	if nil != err {
		return nil, nil, err
	}

	identity := &Identity{
		Name:        name,
		Description: description,
		Account:     keyPair.Account.String(),
		Seed:        hex.EncodeToString(encrypted),
		Salt:        salt.String(),
	}
	return identity, keyPair, nil
}

// Unlock - decrypt the seed and check it regenerates the stored account
func Unlock(password string, identity *Identity) (*keypair.KeyPair, error) {
	if "" == identity.Seed || "" == identity.Salt {
		return nil, fault.NotPrivateKey
	}

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if nil != err {
		return nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(identity.Seed)
	if nil != err {
		return nil, err
	}

	seed, err := decryptSeed(ciphertext, key)
	if nil != err {
		return nil, fault.InvalidIdentityPassword
	}

	_, keyPair, err := keypair.MakeRawKeyPairFromSeed(seed)
	if nil != err {
		return nil, fault.InvalidIdentityPassword
	}
	if keyPair.Account.String() != identity.Account {
		return nil, fault.InvalidIdentityPassword
	}
	return keyPair, nil
}

func hashPassword(password string) (*Salt, []byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, key, nil
}

func generateKey(password string, salt *Salt) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(password), salt.Bytes())
}

// layout: IV ++ AES-CBC(length(2 bytes big endian) ++ seed ++ zero padding)
func encryptSeed(seed string, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}
	n := len(seed)
	if 0 == n || n > maximumSeedLength {
		return nil, fault.InvalidSeedLength
	}

	padding := aes.BlockSize - (n+countBytes)%aes.BlockSize
	plaintext := make([]byte, n+countBytes+padding)
	plaintext[0] = byte(n >> 8)
	plaintext[1] = byte(n)
	copy(plaintext[countBytes:], seed)

	ciphertext := make([]byte, aes.BlockSize+len(plaintext))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); nil != err {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptSeed(ciphertext []byte, key []byte) (string, error) {
	if len(ciphertext) < 2*aes.BlockSize || 0 != len(ciphertext)%aes.BlockSize {
		return "", fault.InvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if nil != err {
		return "", err
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, len(ciphertext)-aes.BlockSize)
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	n := int(plaintext[0])<<8 | int(plaintext[1])
	if n > len(plaintext)-countBytes {
		return "", fault.InvalidSeedLength
	}
	return string(plaintext[countBytes : countBytes+n]), nil
}
