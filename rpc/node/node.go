// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - progress of the request sequencer
type Status interface {
	Height() uint64
	Statistics() (uint64, uint64)
	NextKittyId() kitties.KittyId
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Status  Status
	counter *counter.Counter
}

// New - create the RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, status Status) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Status:  status,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Block       BlockInfo       `json:"block"`
	NextKittyId kitties.KittyId `json:"next_kitty_id"`
	Requests    Counters        `json:"requests"`
	RPCs        uint64          `json:"rpcs"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
}

// BlockInfo - the latest committed block
type BlockInfo struct {
	Height uint64 `json:"height"`
}

// Counters - requests handled since start
type Counters struct {
	Applied  uint64 `json:"applied"`
	Rejected uint64 `json:"rejected"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Block.Height = node.Status.Height()
	reply.NextKittyId = node.Status.NextKittyId()
	reply.Requests.Applied, reply.Requests.Rejected = node.Status.Statistics()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
