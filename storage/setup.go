// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
)

// Pools - the set of pools in one database
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Kitties      *PoolHandle `prefix:"K"`
	KittyOwner   *PoolHandle `prefix:"O"`
	KittyParents *PoolHandle `prefix:"P"`
	Counters     *PoolHandle `prefix:"N"`
	Proofs       *PoolHandle `prefix:"C"`
	Nonces       *PoolHandle `prefix:"A"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Store - an open database with its pools and its single transaction
type Store struct {
	Pool Pools

	access Access
	trx    Transaction
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open or create a database file
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that is discarded on Close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	switch {
	case version > currentDBVersion:
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersionMismatch

	case 0 == version && !readOnly:
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}

	case version != currentDBVersion:
		logger.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersionMismatch
	}

	store := &Store{
		access: newDA(db, newCache()),
	}
	store.trx = newTransaction(store.access)

	err = store.initialisePools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return store, nil
}

// scan each field of Pools and attach a handle for its prefix
func (s *Store) initialisePools() error {
	poolType := reflect.TypeOf(s.Pool)
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]struct{})

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if _, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %v has duplicate prefix: %q", fieldInfo.Name, prefixTag)
		}
		seen[prefix] = struct{}{}

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.access.Close()
}

// NewDBTransaction - begin the store's transaction
//
// blocks until any other transaction on this store has finished
func (s *Store) NewDBTransaction() (Transaction, error) {
	err := s.trx.Begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return db.Put(versionKey, currentVersion, nil)
}
