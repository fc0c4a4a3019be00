// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/registryd/fault"
)

// Access - database plus the pending batch of one transaction
type Access interface {
	Abort()
	Begin()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	Close()
}

type accessData struct {
	sync.RWMutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Begin() {
	d.Lock()
	d.inUse = true
	d.Unlock()
}

func (d *accessData) InUse() bool {
	d.RLock()
	defer d.RUnlock()
	return d.inUse
}

func (d *accessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically then reset for the next transaction
func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.DatabaseIsNotSet
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *accessData) Abort() {
	d.Lock()
	d.reset()
	d.Unlock()
}

func (d *accessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - staged value if any, otherwise the committed value
func (d *accessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.GetCommitted(key)
}

// GetCommitted - ignore anything staged
func (d *accessData) GetCommitted(key []byte) ([]byte, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbDelete != op, nil
	}
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return false, fault.DatabaseIsNotSet
	}
	return d.db.Has(key, nil)
}

// Iterator - over committed data only
func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return iterator.NewEmptyIterator(fault.DatabaseIsNotSet)
	}
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}
