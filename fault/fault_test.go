// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrOwnerOne    = fault.OwnerError("owner one")
	ErrOwnerTwo    = fault.OwnerError("owner two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the error classes are distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		owner    bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false, false},
		{ErrOwnerOne, false, false, false, false, true, false, false},
		{ErrOwnerTwo, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: 'exists' for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: 'invalid' for err = %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: 'length' for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: 'not found' for err = %v", i, err)
		assert.Equal(t, e.owner, fault.IsErrOwner(err), "%d: 'owner' for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: 'process' for err = %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: 'record' for err = %v", i, err)
	}
}

// the registry errors keep distinct messages so callers can match them
func TestRegistryErrors(t *testing.T) {
	registry := []error{
		fault.InvalidIdentifier,
		fault.SameKittyId,
		fault.NotOwner,
		fault.ProofAlreadyExist,
		fault.ClaimNotExist,
		fault.NotClaimOwner,
	}
	seen := make(map[string]struct{})
	for _, err := range registry {
		_, ok := seen[err.Error()]
		assert.False(t, ok, "duplicate message: %q", err)
		seen[err.Error()] = struct{}{}
	}

	assert.True(t, fault.IsErrOwner(fault.NotOwner), "not owner class")
	assert.True(t, fault.IsErrOwner(fault.NotClaimOwner), "not claim owner class")
	assert.True(t, fault.IsErrNotFound(fault.ClaimNotExist), "claim not exist class")
	assert.True(t, fault.IsErrExists(fault.ProofAlreadyExist), "proof already exist class")
	assert.True(t, fault.IsErrLength(fault.ClaimTooLong), "claim too long class")
}
