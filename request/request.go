// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - signed requests for the registries
//
// A request is packed into a canonical byte form which the caller
// signs; the daemon verifies the signature to resolve the caller.
//
//   pack = operation(varint) ++ caller ++ nonce(varint) ++ field ...
//   field = length(varint) ++ bytes      (byte strings, accounts)
//         | value(varint)                 (ids)
package request

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/util"
)

// Operation - what the request asks for
type Operation uint64

// operation codes, these are part of the signed data so must not change
const (
	Nothing       Operation = iota
	CreateKitty   Operation = iota
	BreedKitty    Operation = iota
	TransferKitty Operation = iota
	CreateClaim   Operation = iota
	RevokeClaim   Operation = iota
	TransferClaim Operation = iota
)

var operationNames = map[Operation]string{
	CreateKitty:   "create",
	BreedKitty:    "breed",
	TransferKitty: "transfer",
	CreateClaim:   "create-claim",
	RevokeClaim:   "revoke-claim",
	TransferClaim: "transfer-claim",
}

func (op Operation) String() string {
	if s, ok := operationNames[op]; ok {
		return s
	}
	return "unknown"
}

// Request - an operation with its arguments
//
// only the fields used by the operation are packed; the nonce must
// exceed the last one accepted from the caller
type Request struct {
	Operation Operation         `json:"operation"`
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Parent1   kitties.KittyId   `json:"parent1,omitempty"`
	Parent2   kitties.KittyId   `json:"parent2,omitempty"`
	KittyId   kitties.KittyId   `json:"kitty_id,omitempty"`
	To        *account.Account  `json:"to,omitempty"`
	Claim     claims.Claim      `json:"claim,omitempty"`
	Signature account.Signature `json:"signature"`
}

// Pack - canonical bytes covered by the signature
func (r *Request) Pack() ([]byte, error) {
	if nil == r.Caller || nil == r.Caller.AccountInterface {
		return nil, fault.MissingParameters
	}

	buffer := util.ToVarint64(uint64(r.Operation))
	buffer = appendBytes(buffer, r.Caller.Bytes())
	buffer = util.AppendVarint64(buffer, r.Nonce)

	switch r.Operation {
	case CreateKitty:

	case BreedKitty:
		buffer = util.AppendVarint64(buffer, uint64(r.Parent1))
		buffer = util.AppendVarint64(buffer, uint64(r.Parent2))

	case TransferKitty:
		if nil == r.To || nil == r.To.AccountInterface {
			return nil, fault.MissingParameters
		}
		buffer = appendBytes(buffer, r.To.Bytes())
		buffer = util.AppendVarint64(buffer, uint64(r.KittyId))

	case CreateClaim, RevokeClaim:
		if err := claims.CheckClaim(r.Claim); nil != err {
			return nil, err
		}
		buffer = appendBytes(buffer, r.Claim)

	case TransferClaim:
		if err := claims.CheckClaim(r.Claim); nil != err {
			return nil, err
		}
		if nil == r.To || nil == r.To.AccountInterface {
			return nil, fault.MissingParameters
		}
		buffer = appendBytes(buffer, r.Claim)
		buffer = appendBytes(buffer, r.To.Bytes())

	default:
		return nil, fault.UnknownOperation
	}
	return buffer, nil
}

// Sign - sign the packed request, the key must belong to the caller
func (r *Request) Sign(privateKey *account.PrivateKey) error {
	if !privateKey.Account().Equal(r.Caller) {
		return fault.InvalidSignature
	}
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	r.Signature = privateKey.Sign(packed)
	return nil
}

// Authenticate - verify the signature and return the caller
func Authenticate(r *Request) (*account.Account, error) {
	packed, err := r.Pack()
	if nil != err {
		return nil, err
	}
	err = r.Caller.CheckSignature(packed, r.Signature)
	if nil != err {
		return nil, err
	}
	return r.Caller, nil
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}
