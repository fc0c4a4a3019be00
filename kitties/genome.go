// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// GenomeLength - bytes in a genome
const GenomeLength = 16

// Genome - write-once data distinguishing one kitty from another
type Genome [GenomeLength]byte

// domain separation for the two derivations
var (
	createTag = []byte("kitty")
	breedTag  = []byte("breed")
)

// derive a genome for a created kitty
//
//   SHA3-256("kitty" ++ caller ++ id ++ block)[:16]
func newGenome(caller *account.Account, id KittyId, block uint64) Genome {
	return digest(createTag, caller.Bytes(), id.Key(), util.Uint64ToKey(block))
}

// derive the selector mask used to breed two parents
//
//   SHA3-256("breed" ++ caller ++ parent1 ++ parent2 ++ id ++ block)[:16]
func breedSelector(caller *account.Account, parent1 KittyId, parent2 KittyId, id KittyId, block uint64) Genome {
	return digest(breedTag, caller.Bytes(), parent1.Key(), parent2.Key(), id.Key(), util.Uint64ToKey(block))
}

// Combine - take each bit from g1 where the selector bit is set,
// otherwise from g2
func Combine(g1 Genome, g2 Genome, selector Genome) Genome {
	var child Genome
	for i := range child {
		child[i] = (g1[i] & selector[i]) | (g2[i] &^ selector[i])
	}
	return child
}

func digest(parts ...[]byte) Genome {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var g Genome
	copy(g[:], h.Sum(nil))
	return g
}

// String - hex form
func (g Genome) String() string {
	return hex.EncodeToString(g[:])
}

// MarshalText - hex JSON form
func (g Genome) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(GenomeLength))
	hex.Encode(b, g[:])
	return b, nil
}

// UnmarshalText - from hex
func (g *Genome) UnmarshalText(s []byte) error {
	if hex.EncodedLen(GenomeLength) != len(s) {
		return fault.RecordCorrupt
	}
	_, err := hex.Decode(g[:], s)
	return err
}
