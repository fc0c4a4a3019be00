// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// accessors only read committed state

// Record - everything known about one kitty
type Record struct {
	KittyId KittyId          `json:"kitty_id"`
	Kitty   Genome           `json:"kitty"`
	Owner   *account.Account `json:"owner"`
	Parents *Parents         `json:"parents,omitempty"`
}

// NextKittyId - the id the next successful Create or Breed will return
func (r *Registry) NextKittyId() KittyId {
	return KittyId(r.ids.Peek())
}

// Kitty - genome of an issued kitty
func (r *Registry) Kitty(id KittyId) (Genome, bool) {
	return r.decodeGenome(id, r.pools.Kitties.Get(id.Key()))
}

// Owner - current owner of an issued kitty
func (r *Registry) Owner(id KittyId) (*account.Account, bool) {
	buffer := r.pools.Owners.Get(id.Key())
	if nil == buffer {
		return nil, false
	}
	return r.decodeOwner(id, buffer), true
}

// Parents - lineage, only present for bred kitties
func (r *Registry) Parents(id KittyId) (*Parents, bool) {
	buffer := r.pools.Parents.Get(id.Key())
	if nil == buffer {
		return nil, false
	}
	return decodeParents(id, buffer), true
}

// Get - the full record for one kitty
func (r *Registry) Get(id KittyId) (*Record, bool) {
	genome, ok := r.Kitty(id)
	if !ok {
		return nil, false
	}
	owner, _ := r.Owner(id)
	parents, _ := r.Parents(id)
	return &Record{
		KittyId: id,
		Kitty:   genome,
		Owner:   owner,
		Parents: parents,
	}, true
}

// List - up to count records with ids from start upwards
//
// also returns the start for the next page
func (r *Registry) List(start KittyId, count int) ([]*Record, KittyId, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	cursor := r.pools.Kitties.NewFetchCursor().Seek(start.Key())
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	records := make([]*Record, 0, len(elements))
	next := start
	for _, e := range elements {
		n, ok := util.KeyToUint32(e.Key)
		if !ok {
			return nil, start, fault.RecordCorrupt
		}
		id := KittyId(n)
		genome, _ := r.decodeGenome(id, e.Value)
		owner, _ := r.Owner(id)
		parents, _ := r.Parents(id)
		records = append(records, &Record{
			KittyId: id,
			Kitty:   genome,
			Owner:   owner,
			Parents: parents,
		})
		next = id + 1
	}
	return records, next, nil
}

func decodeParents(id KittyId, buffer []byte) *Parents {
	if 8 != len(buffer) {
		logger.Panicf("kitties: parents record for: %d is corrupt: %x", id, buffer)
	}
	p1, _ := util.KeyToUint32(buffer[:4])
	p2, _ := util.KeyToUint32(buffer[4:])
	return &Parents{
		Parent1: KittyId(p1),
		Parent2: KittyId(p2),
	}
}
