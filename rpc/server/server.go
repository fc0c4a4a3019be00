// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the set of RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/rpc/claim"
	"github.com/bitmark-inc/registryd/rpc/kitty"
	"github.com/bitmark-inc/registryd/rpc/node"
	"github.com/bitmark-inc/registryd/sequencer"
)

// Create - register the Kitty, Claim and Node services
func Create(log *logger.L, version string, rpcCount *counter.Counter, seq *sequencer.Sequencer) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitty.New(log, seq.Kitties(), seq))
	_ = server.Register(claim.New(log, seq.Claims(), seq))
	_ = server.Register(node.New(log, start, version, rpcCount, seq))

	return server
}
