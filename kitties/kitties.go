// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - registry of ownable, breedable kitties
//
// Every operation validates completely against the transaction's view
// of storage before staging any write, so a failed operation stages
// nothing and sends no event.  The caller owns the transaction and
// decides whether to commit it.
package kitties

import (
	"math"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/allocator"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/util"
)

// KittyId - sequentially allocated identifier
type KittyId uint32

// MaximumKittyId - the counter is never allowed to reach beyond this
const MaximumKittyId = math.MaxUint32

// Key - database key form of the id
func (id KittyId) Key() []byte {
	return util.Uint32ToKey(uint32(id))
}

// Parents - lineage of a bred kitty in the order given to Breed
type Parents struct {
	Parent1 KittyId `json:"parent1"`
	Parent2 KittyId `json:"parent2"`
}

// Handles - the storage pools used by the registry
type Handles struct {
	Kitties  storage.Handle
	Owners   storage.Handle
	Parents  storage.Handle
	Counters storage.Handle
}

// Registry - kitty operations and accessors
type Registry struct {
	log         *logger.L
	pools       Handles
	ids         *allocator.Allocator
	blockNumber func() uint64
}

// counter record holding the next kitty id
var nextKittyIdKey = []byte("kitty")

// New - create a registry over a set of pools
//
// blockNumber supplies the number of the block being built and is
// only used to derive genomes
func New(log *logger.L, pools Handles, blockNumber func() uint64) *Registry {
	return &Registry{
		log:         log,
		pools:       pools,
		ids:         allocator.New(pools.Counters, nextKittyIdKey),
		blockNumber: blockNumber,
	}
}

// Create - issue a new kitty owned by the caller
func (r *Registry) Create(trx storage.Transaction, caller *account.Account, sink event.Sink) (KittyId, error) {
	n, err := r.ids.Next(trx, MaximumKittyId)
	if nil != err {
		return 0, err
	}
	id := KittyId(n)

	genome := newGenome(caller, id, r.blockNumber())

	trx.Put(r.pools.Kitties, id.Key(), genome[:])
	trx.Put(r.pools.Owners, id.Key(), caller.Bytes())

	r.log.Infof("created: %d  owner: %s  genome: %s", id, caller, genome)

	sink.Send(KittyCreated{
		Who:     caller,
		KittyId: id,
		Kitty:   genome,
	})
	return id, nil
}

// Breed - issue a new kitty combining the genomes of two existing kitties
//
// the caller need not own either parent
func (r *Registry) Breed(trx storage.Transaction, caller *account.Account, parent1 KittyId, parent2 KittyId, sink event.Sink) (KittyId, error) {
	if parent1 == parent2 {
		return 0, fault.SameKittyId
	}

	g1, ok := r.genome(trx, parent1)
	if !ok {
		return 0, fault.InvalidIdentifier
	}
	g2, ok := r.genome(trx, parent2)
	if !ok {
		return 0, fault.InvalidIdentifier
	}

	n, err := r.ids.Next(trx, MaximumKittyId)
	if nil != err {
		return 0, err
	}
	id := KittyId(n)

	selector := breedSelector(caller, parent1, parent2, id, r.blockNumber())
	genome := Combine(g1, g2, selector)

	lineage := make([]byte, 0, 8)
	lineage = append(lineage, parent1.Key()...)
	lineage = append(lineage, parent2.Key()...)

	trx.Put(r.pools.Kitties, id.Key(), genome[:])
	trx.Put(r.pools.Owners, id.Key(), caller.Bytes())
	trx.Put(r.pools.Parents, id.Key(), lineage)

	r.log.Infof("bred: %d  from: %d, %d  owner: %s  genome: %s", id, parent1, parent2, caller, genome)

	sink.Send(KittyBred{
		Who:     caller,
		KittyId: id,
		Kitty:   genome,
	})
	return id, nil
}

// Transfer - change the owner of a kitty
//
// a missing kitty has no owner so is also NotOwner,
// transfer to self is allowed
func (r *Registry) Transfer(trx storage.Transaction, caller *account.Account, to *account.Account, id KittyId, sink event.Sink) error {
	owner := trx.Get(r.pools.Owners, id.Key())
	if nil == owner || !caller.Equal(r.decodeOwner(id, owner)) {
		return fault.NotOwner
	}

	trx.Put(r.pools.Owners, id.Key(), to.Bytes())

	r.log.Infof("transferred: %d  from: %s  to: %s", id, caller, to)

	sink.Send(KittyTransferred{
		Who:       caller,
		Recipient: to,
		KittyId:   id,
	})
	return nil
}

// genome as seen by a transaction
func (r *Registry) genome(trx storage.Transaction, id KittyId) (Genome, bool) {
	return r.decodeGenome(id, trx.Get(r.pools.Kitties, id.Key()))
}

func (r *Registry) decodeGenome(id KittyId, buffer []byte) (Genome, bool) {
	var g Genome
	if nil == buffer {
		return g, false
	}
	if GenomeLength != len(buffer) {
		logger.Panicf("kitties: genome record for: %d has length: %d", id, len(buffer))
	}
	copy(g[:], buffer)
	return g, true
}

func (r *Registry) decodeOwner(id KittyId, buffer []byte) *account.Account {
	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		logger.Panicf("kitties: owner record for: %d error: %s", id, err)
	}
	return owner
}
