// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// registry-cli - command line client for registryd
//
// Identities are kept in a JSON file with each seed encrypted under
// its own password.  State changing commands sign their request with
// the selected identity and submit it over TLS JSON-RPC.
package main
