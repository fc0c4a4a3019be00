// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
)

// Transaction - all-or-nothing group of writes
//
// reads through a transaction see its own pending writes,
// reads through a Handle only see committed data
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	GetNB(Handle, []byte) (uint64, []byte)
	Has(Handle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

type transactionData struct {
	lock       chan struct{}
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		lock:       make(chan struct{}, 1),
		dataAccess: access,
	}
}

// Begin - wait for exclusive use of the transaction
//
// the lock is held until Commit or Abort
func (t *transactionData) Begin() error {
	t.lock <- struct{}{}
	t.dataAccess.Begin()
	return nil
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *transactionData) Put(handle Handle, key []byte, value []byte) {
	t.mustBeInUse("Put")
	t.dataAccess.Put(handle.PrefixKey(key), value)
}

// PutN - store a big endian uint64
func (t *transactionData) PutN(handle Handle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transactionData) Delete(handle Handle, key []byte) {
	t.mustBeInUse("Delete")
	t.dataAccess.Delete(handle.PrefixKey(key))
}

func (t *transactionData) Get(handle Handle, key []byte) []byte {
	value, err := t.dataAccess.Get(handle.PrefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionData) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transactionData) GetNB(handle Handle, key []byte) (uint64, []byte) {
	return decodeNB(key, t.Get(handle, key))
}

func (t *transactionData) Has(handle Handle, key []byte) bool {
	found, err := t.dataAccess.Has(handle.PrefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - apply every pending write as one batch and release the lock
func (t *transactionData) Commit() error {
	if !t.dataAccess.InUse() {
		return fault.TransactionNotInUse
	}
	err := t.dataAccess.Commit()
	<-t.lock
	return err
}

// Abort - discard every pending write and release the lock
func (t *transactionData) Abort() {
	if !t.dataAccess.InUse() {
		return
	}
	t.dataAccess.Abort()
	<-t.lock
}

func (t *transactionData) mustBeInUse(operation string) {
	if !t.dataAccess.InUse() {
		logger.Panicf("transaction.%s: transaction not in use", operation)
	}
}
