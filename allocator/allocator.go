// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - sequential identifiers backed by a storage counter
package allocator

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
)

// Allocator - hands out 0, 1, 2, ... from a single counter record
type Allocator struct {
	handle storage.Handle
	key    []byte
}

// New - counter stored under key in the given pool
func New(handle storage.Handle, key []byte) *Allocator {
	return &Allocator{
		handle: handle,
		key:    key,
	}
}

// Peek - the next value that will be allocated, committed state only
func (a *Allocator) Peek() uint64 {
	n, _ := a.handle.GetN(a.key)
	return n
}

// Current - the next value as seen by a transaction
func (a *Allocator) Current(trx storage.Transaction) uint64 {
	n, _ := trx.GetN(a.handle, a.key)
	return n
}

// Next - return the current value and stage current+1
//
// fails without staging anything if current+1 would exceed maximum
func (a *Allocator) Next(trx storage.Transaction, maximum uint64) (uint64, error) {
	n := a.Current(trx)
	if n >= maximum {
		return 0, fault.InvalidIdentifier
	}
	trx.PutN(a.handle, a.key, n+1)
	return n, nil
}

// Set - overwrite the counter
func (a *Allocator) Set(trx storage.Transaction, value uint64) {
	trx.PutN(a.handle, a.key, value)
}
