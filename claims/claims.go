// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claims - proof of existence registry
//
// A claim is a short opaque byte string, typically a content
// fingerprint, owned by the account that created it.
package claims

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/util"
)

// MaximumClaimLength - longest accepted claim in bytes
const MaximumClaimLength = 10

// Claim - opaque claim bytes, hex in JSON
type Claim []byte

// Proof - the value stored for a live claim
type Proof struct {
	Owner *account.Account `json:"owner"`
	Block uint64           `json:"block"`
}

// Handles - the storage pools used by the registry
type Handles struct {
	Proofs storage.Handle
}

// Registry - claim operations and accessors
type Registry struct {
	log         *logger.L
	pools       Handles
	blockNumber func() uint64
}

// New - create a registry over a set of pools
//
// blockNumber supplies the number recorded with each new claim
func New(log *logger.L, pools Handles, blockNumber func() uint64) *Registry {
	return &Registry{
		log:         log,
		pools:       pools,
		blockNumber: blockNumber,
	}
}

// CheckClaim - reject malformed claims before any lookup
func CheckClaim(claim Claim) error {
	if 0 == len(claim) {
		return fault.ClaimEmpty
	}
	if len(claim) > MaximumClaimLength {
		return fault.ClaimTooLong
	}
	return nil
}

// CreateClaim - record the caller as owner of a new claim
func (r *Registry) CreateClaim(trx storage.Transaction, caller *account.Account, claim Claim, sink event.Sink) error {
	if err := CheckClaim(claim); nil != err {
		return err
	}
	if trx.Has(r.pools.Proofs, claim) {
		return fault.ProofAlreadyExist
	}

	block := r.blockNumber()
	trx.Put(r.pools.Proofs, claim, packProof(caller, block))

	r.log.Infof("claim created: %x  owner: %s  block: %d", []byte(claim), caller, block)

	sink.Send(ClaimCreated{
		Who:   caller,
		Claim: claim,
	})
	return nil
}

// RevokeClaim - delete a claim owned by the caller, the claim may then be created again
func (r *Registry) RevokeClaim(trx storage.Transaction, caller *account.Account, claim Claim, sink event.Sink) error {
	if _, err := r.owned(trx, caller, claim); nil != err {
		return err
	}

	trx.Delete(r.pools.Proofs, claim)

	r.log.Infof("claim revoked: %x  owner: %s", []byte(claim), caller)

	sink.Send(ClaimRevoked{
		Who:   caller,
		Claim: claim,
	})
	return nil
}

// TransferClaim - change the owner, keeping the creation block
func (r *Registry) TransferClaim(trx storage.Transaction, caller *account.Account, claim Claim, dest *account.Account, sink event.Sink) error {
	proof, err := r.owned(trx, caller, claim)
	if nil != err {
		return err
	}

	trx.Put(r.pools.Proofs, claim, packProof(dest, proof.Block))

	r.log.Infof("claim transferred: %x  from: %s  to: %s", []byte(claim), caller, dest)

	sink.Send(ClaimTransferred{
		Who:   caller,
		Claim: claim,
		Dest:  dest,
	})
	return nil
}

// the live proof of a claim, only if owned by caller
func (r *Registry) owned(trx storage.Transaction, caller *account.Account, claim Claim) (*Proof, error) {
	if err := CheckClaim(claim); nil != err {
		return nil, err
	}
	block, owner := trx.GetNB(r.pools.Proofs, claim)
	if nil == owner {
		return nil, fault.ClaimNotExist
	}
	proof := unpackProof(claim, block, owner)
	if !caller.Equal(proof.Owner) {
		return nil, fault.NotClaimOwner
	}
	return proof, nil
}

// Claim - the proof for a live claim, committed state only
func (r *Registry) Claim(claim Claim) (*Proof, bool) {
	if nil != CheckClaim(claim) {
		return nil, false
	}
	block, owner := r.pools.Proofs.GetNB(claim)
	if nil == owner {
		return nil, false
	}
	return unpackProof(claim, block, owner), true
}

// Entry - a claim with its proof
type Entry struct {
	Claim Claim `json:"claim"`
	Proof
}

// List - up to count live claims in key order starting from start
//
// also returns the start for the next page, nil when exhausted
func (r *Registry) List(start Claim, count int) ([]*Entry, Claim, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	cursor := r.pools.Proofs.NewFetchCursor()
	if 0 != len(start) {
		cursor.Seek(start)
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	entries := make([]*Entry, 0, len(elements))
	for _, e := range elements {
		if len(e.Value) < 9 {
			return nil, start, fault.RecordCorrupt
		}
		block, _ := util.KeyToUint64(e.Value[:8])
		entries = append(entries, &Entry{
			Claim: e.Key,
			Proof: *unpackProof(e.Key, block, e.Value[8:]),
		})
	}

	var next Claim
	if n := len(entries); n == count {
		// smallest key after the last one returned
		next = append(append(Claim{}, entries[n-1].Claim...), 0x00)
	}
	return entries, next, nil
}

// value: block number ++ owner
func packProof(owner *account.Account, block uint64) []byte {
	return append(util.Uint64ToKey(block), owner.Bytes()...)
}

func unpackProof(claim Claim, block uint64, ownerBytes []byte) *Proof {
	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		logger.Panicf("claims: proof for: %x owner error: %s", []byte(claim), err)
	}
	return &Proof{
		Owner: owner,
		Block: block,
	}
}

// String - hex form
func (c Claim) String() string {
	return hex.EncodeToString(c)
}

// MarshalText - hex JSON form
func (c Claim) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(c)))
	hex.Encode(b, c)
	return b, nil
}

// UnmarshalText - from hex
func (c *Claim) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*c = b[:n]
	return nil
}
