// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/registryd/account"
)

// KittyCreated - a new kitty from Create
type KittyCreated struct {
	Who     *account.Account `json:"who"`
	KittyId KittyId          `json:"kitty_id"`
	Kitty   Genome           `json:"kitty"`
}

// KittyBred - a new kitty from Breed
type KittyBred struct {
	Who     *account.Account `json:"who"`
	KittyId KittyId          `json:"kitty_id"`
	Kitty   Genome           `json:"kitty"`
}

// KittyTransferred - ownership changed
type KittyTransferred struct {
	Who       *account.Account `json:"who"`
	Recipient *account.Account `json:"recipient"`
	KittyId   KittyId          `json:"kitty_id"`
}

func (KittyCreated) Name() string     { return "KittyCreated" }
func (KittyBred) Name() string        { return "KittyBred" }
func (KittyTransferred) Name() string { return "KittyTransferred" }
