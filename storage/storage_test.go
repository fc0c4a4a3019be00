// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/util"
)

func setupMemory(t *testing.T) *storage.Store {
	fixtures.SetupTestLogger()
	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return store
}

func teardown(store *storage.Store) {
	store.Close()
	fixtures.TeardownTestLogger()
}

func begin(t *testing.T, store *storage.Store) storage.Transaction {
	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin transaction error: %s", err)
	}
	return trx
}

func TestCommitIsVisible(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	pool := store.Pool.TestData
	key := []byte("key-one")

	trx := begin(t, store)
	trx.Put(pool, key, []byte("data-one"))

	assert.Equal(t, []byte("data-one"), trx.Get(pool, key), "transaction sees its own write")
	assert.True(t, trx.Has(pool, key), "transaction has its own write")
	assert.Nil(t, pool.Get(key), "pool must not see pending write")
	assert.False(t, pool.Has(key), "pool must not have pending write")

	err := trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Equal(t, []byte("data-one"), pool.Get(key), "pool sees committed write")
	assert.True(t, pool.Has(key), "pool has committed write")
	assert.False(t, trx.InUse(), "transaction released")
}

func TestAbortDiscards(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	pool := store.Pool.TestData

	trx := begin(t, store)
	trx.Put(pool, []byte("key-two"), []byte("data-two"))
	trx.PutN(pool, []byte("count"), 42)
	trx.Abort()

	assert.Nil(t, pool.Get([]byte("key-two")), "aborted put")
	_, found := pool.GetN([]byte("count"))
	assert.False(t, found, "aborted putN")

	// the next transaction must not see the aborted cache
	trx = begin(t, store)
	assert.Nil(t, trx.Get(pool, []byte("key-two")), "aborted put seen in next transaction")
	trx.Abort()
}

func TestDeleteHidesCommittedValue(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	pool := store.Pool.TestData
	key := []byte("key-three")

	trx := begin(t, store)
	trx.Put(pool, key, []byte("data-three"))
	assert.Nil(t, trx.Commit(), "first commit")

	trx = begin(t, store)
	trx.Delete(pool, key)
	assert.Nil(t, trx.Get(pool, key), "deleted key must not fall through to database")
	assert.False(t, trx.Has(pool, key), "deleted key must not be present")
	assert.True(t, pool.Has(key), "committed key still present before commit")

	// a key deleted then re-created in one transaction is present
	trx.Put(pool, key, []byte("data-three(NEW)"))
	assert.Equal(t, []byte("data-three(NEW)"), trx.Get(pool, key), "re-created key")
	trx.Delete(pool, key)
	assert.Nil(t, trx.Commit(), "second commit")

	assert.Nil(t, pool.Get(key), "deleted after commit")
}

func TestNumbers(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	pool := store.Pool.Counters

	trx := begin(t, store)
	n, found := trx.GetN(pool, []byte("kitty"))
	assert.False(t, found, "missing counter")
	assert.Equal(t, uint64(0), n, "missing counter value")

	trx.PutN(pool, []byte("kitty"), 0x0102030405060708)
	trx.Put(pool, []byte("nb"), []byte{0, 0, 0, 0, 0, 0, 0, 9, 'a', 'b'})
	assert.Nil(t, trx.Commit(), "commit")

	n, found = pool.GetN([]byte("kitty"))
	assert.True(t, found, "counter found")
	assert.Equal(t, uint64(0x0102030405060708), n, "counter value")

	n, b := pool.GetNB([]byte("nb"))
	assert.Equal(t, uint64(9), n, "NB number")
	assert.Equal(t, []byte("ab"), b, "NB bytes")

	n, b = pool.GetNB([]byte("absent"))
	assert.Equal(t, uint64(0), n, "absent NB number")
	assert.Nil(t, b, "absent NB bytes")
}

func TestPoolsAreSeparate(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	key := util.Uint32ToKey(7)

	trx := begin(t, store)
	trx.Put(store.Pool.Kitties, key, []byte("genome"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.True(t, store.Pool.Kitties.Has(key), "kitties has key")
	assert.False(t, store.Pool.KittyOwner.Has(key), "owners must not have key")
	assert.False(t, store.Pool.KittyParents.Has(key), "parents must not have key")
}

func TestFetchCursor(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	pool := store.Pool.Kitties
	ids := []uint32{0, 1, 2, 255, 256, 257, 65536}

	trx := begin(t, store)
	for _, id := range ids {
		trx.Put(pool, util.Uint32ToKey(id), []byte{byte(id)})
	}
	// another pool must not leak into the cursor
	trx.Put(store.Pool.KittyOwner, util.Uint32ToKey(3), []byte{3})
	assert.Nil(t, trx.Commit(), "commit")

	cursor := pool.NewFetchCursor()
	got := make([]uint32, 0, len(ids))
	for {
		elements, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch")
		if 0 == len(elements) {
			break
		}
		assert.True(t, len(elements) <= 3, "too many elements")
		for _, e := range elements {
			id, ok := util.KeyToUint32(e.Key)
			assert.True(t, ok, "key size")
			assert.Equal(t, []byte{byte(id)}, e.Value, "value")
			got = append(got, id)
		}
	}
	assert.Equal(t, ids, got, "all keys in order")

	elements, err := pool.NewFetchCursor().Seek(util.Uint32ToKey(256)).Fetch(10)
	assert.Nil(t, err, "seek fetch")
	assert.Equal(t, 3, len(elements), "elements after seek")

	_, err = pool.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	count := 0
	err = pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, len(ids), count, "map count")
}

func TestBeginIsExclusive(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	trx := begin(t, store)

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		trx2, err := store.NewDBTransaction()
		assert.Nil(t, err, "second begin")
		trx2.Put(store.Pool.TestData, []byte("second"), []byte("2"))
		assert.Nil(t, trx2.Commit(), "second commit")
		close(done)
	}()

	<-started
	select {
	case <-done:
		t.Fatal("second transaction began while first was in use")
	case <-time.After(50 * time.Millisecond):
	}

	trx.Put(store.Pool.TestData, []byte("first"), []byte("1"))
	assert.Nil(t, trx.Commit(), "first commit")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("second transaction did not proceed")
	}
	assert.True(t, store.Pool.TestData.Has([]byte("first")), "first write")
	assert.True(t, store.Pool.TestData.Has([]byte("second")), "second write")
}

func TestCommitWithoutBegin(t *testing.T) {
	store := setupMemory(t)
	defer teardown(store)

	trx := begin(t, store)
	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.TransactionNotInUse, trx.Commit(), "second commit")
	trx.Abort() // no effect when not in use
}

func TestFileDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "storage-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	database := filepath.Join(dir, "registry.leveldb")

	_, err = storage.Open(database, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	store, err := storage.Open(database, storage.ReadWrite)
	if !assert.Nil(t, err, "create database") {
		return
	}
	trx := begin(t, store)
	trx.Put(store.Pool.Proofs, []byte{0, 1}, []byte("proof"))
	assert.Nil(t, trx.Commit(), "commit")
	store.Close()

	store, err = storage.Open(database, storage.ReadOnly)
	if !assert.Nil(t, err, "reopen read only") {
		return
	}
	defer store.Close()
	assert.Equal(t, []byte("proof"), store.Pool.Proofs.Get([]byte{0, 1}), "persisted value")
}
