// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed events over ZeroMQ
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/background"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/zmqutil"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// listener buffer, events beyond this are dropped for slow sockets
const queueSize = 1000

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast sockets and start forwarding events
func Initialise(configuration *Configuration, queue *event.Queue) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	globalData.log.Tracef("public key: %x", publicKey)

	err = globalData.brdc.initialise(globalData.log, privateKey, publicKey, configuration.Broadcast, queue)
	if nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the broadcaster and close its sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.brdc.close()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
