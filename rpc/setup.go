// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/rpc/certificate"
	"github.com/bitmark-inc/registryd/rpc/listeners"
	"github.com/bitmark-inc/registryd/rpc/server"
	"github.com/bitmark-inc/registryd/sequencer"
)

const (
	tlsName = "client_rpc"
)

type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string, seq *sequencer.Sequencer) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, seq),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of open client connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
