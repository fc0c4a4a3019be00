// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/storage"
)

// no block is built while dumping
func noBlock() uint64 { return 0 }

func kittyRegistry(log *logger.L, store *storage.Store) *kitties.Registry {
	return kitties.New(log, kitties.Handles{
		Kitties:  store.Pool.Kitties,
		Owners:   store.Pool.KittyOwner,
		Parents:  store.Pool.KittyParents,
		Counters: store.Pool.Counters,
	}, noBlock)
}

func claimRegistry(log *logger.L, store *storage.Store) *claims.Registry {
	return claims.New(log, claims.Handles{
		Proofs: store.Pool.Proofs,
	}, noBlock)
}

// write one JSON object per line for every kitty from start
func dumpKitties(log *logger.L, store *storage.Store, start uint64, pageSize int, w io.Writer) error {
	registry := kittyRegistry(log, store)
	encoder := json.NewEncoder(w)

	next := kitties.KittyId(start)
	for {
		records, n, err := registry.List(next, pageSize)
		if nil != err {
			return err
		}
		for _, r := range records {
			err := encoder.Encode(r)
			if nil != err {
				return err
			}
		}
		log.Debugf("dumped: %d kitties from: %d", len(records), next)
		if len(records) < pageSize {
			return nil
		}
		next = n
	}
}

// write one JSON object per line for every live claim
func dumpClaims(log *logger.L, store *storage.Store, pageSize int, w io.Writer) error {
	registry := claimRegistry(log, store)
	encoder := json.NewEncoder(w)

	var next claims.Claim
	for {
		entries, n, err := registry.List(next, pageSize)
		if nil != err {
			return err
		}
		for _, e := range entries {
			err := encoder.Encode(e)
			if nil != err {
				return err
			}
		}
		log.Debugf("dumped: %d claims", len(entries))
		if nil == n {
			return nil
		}
		next = n
	}
}
