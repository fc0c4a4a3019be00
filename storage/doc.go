// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. kitty id     = big endian uint32 (4 bytes)
// 4. number       = big endian uint64 (8 bytes)
// 5. account      = key code ++ public key (see account.Bytes)
// 6. genome       = 16 bytes
//
// Kitties:
//
//   K ++ kitty id              - genome of an issued kitty
//                                data: genome
//   O ++ kitty id              - current owner
//                                data: account
//   P ++ kitty id              - lineage, only for bred kitties
//                                data: parent1 kitty id ++ parent2 kitty id
//
// Counters:
//
//   N ++ name                  - "kitty": next kitty id to allocate
//                                "block": last committed block number
//                                data: number
//
// Proofs:
//
//   C ++ claim                 - live claim
//                                data: creation block number ++ owner account
//
// Testing:
//   Z ++ key                   - testing data
//
// Writes are only made through a Transaction; all pending writes of a
// transaction are applied as a single LevelDB batch on Commit.
package storage
