// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - staged writes of the current transaction
type Cache interface {
	Get(string) ([]byte, int, bool)
	Set(int, string, []byte)
	Clear()
}

// staged operations
const (
	dbPut = iota
	dbDelete
)

// a transaction never lives this long, entries only expire if a
// transaction is abandoned without Abort
const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 20 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get - returns the staged value and operation
//
// a found dbDelete entry means the key must be treated as absent
// and must not fall through to the database
func (c *dbCache) Get(key string) ([]byte, int, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}
	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
