// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"strconv"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log      *logger.L
	queue    *event.Queue
	listener <-chan event.Record
	socket4  *zmq.Socket
	socket6  *zmq.Socket
}

func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, queue *event.Queue) error {
	brdc.log = log
	brdc.queue = queue

	err := zmqutil.StartAuthentication()
	if nil != err {
		return err
	}

	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.listener = queue.Listen(queueSize)
	return nil
}

func (brdc *broadcaster) close() {
	brdc.queue.Release(brdc.listener)
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}

// Run - forward queued records until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case record, ok := <-brdc.listener:
			if !ok {
				break loop
			}
			err := brdc.process(record)
			if nil != err {
				log.Errorf("publish block: %d  event: %s  error: %s", record.Block, record.Event.Name(), err)
			}
		}
	}
	log.Info("stopped")
}

func (brdc *broadcaster) process(record event.Record) error {
	parts, err := packRecord(record)
	if nil != err {
		return err
	}

	brdc.log.Debugf("publish: %s", parts[2])

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(parts)
		if nil != err {
			return err
		}
	}
	return nil
}

// three frames: event name, decimal block number, JSON record
//
// subscribers filter on the event name prefix
func packRecord(record event.Record) ([][]byte, error) {
	data, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}
	return [][]byte{
		[]byte(record.Event.Name()),
		[]byte(strconv.FormatUint(record.Block, 10)),
		data,
	}, nil
}
