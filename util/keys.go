// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// Uint32ToKey - big endian so that database keys sort numerically
func Uint32ToKey(n uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, n)
	return key
}

// KeyToUint32 - inverse of Uint32ToKey, false if the key is the wrong size
func KeyToUint32(key []byte) (uint32, bool) {
	if 4 != len(key) {
		return 0, false
	}
	return binary.BigEndian.Uint32(key), true
}

// Uint64ToKey - big endian 8 byte form
func Uint64ToKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// KeyToUint64 - inverse of Uint64ToKey, false if the key is the wrong size
func KeyToUint64(key []byte) (uint64, bool) {
	if 8 != len(key) {
		return 0, false
	}
	return binary.BigEndian.Uint64(key), true
}
