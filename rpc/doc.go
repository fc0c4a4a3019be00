// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS for registry clients
//
// services:
//   Kitty  Create, Breed, Transfer, Get, List
//   Claim  Create, Revoke, Transfer, Get, List
//   Node   Info
//
// state changing calls carry the caller's account and an ed25519
// signature over the packed request, see package request
package rpc
