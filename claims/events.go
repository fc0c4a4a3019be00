// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/registryd/account"
)

// ClaimCreated - a new live claim
type ClaimCreated struct {
	Who   *account.Account `json:"who"`
	Claim Claim            `json:"claim"`
}

// ClaimRevoked - a claim was deleted by its owner
type ClaimRevoked struct {
	Who   *account.Account `json:"who"`
	Claim Claim            `json:"claim"`
}

// ClaimTransferred - a claim changed owner
type ClaimTransferred struct {
	Who   *account.Account `json:"who"`
	Claim Claim            `json:"claim"`
	Dest  *account.Account `json:"dest"`
}

func (ClaimCreated) Name() string     { return "ClaimCreated" }
func (ClaimRevoked) Name() string     { return "ClaimRevoked" }
func (ClaimTransferred) Name() string { return "ClaimTransferred" }
