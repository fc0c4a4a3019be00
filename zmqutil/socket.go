// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of "IP:port" addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {
	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	closeAll := func() {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
	}

	for i, address := range listen {
		bindTo, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			closeAll()
			return nil, nil, err
		}
		v6 := strings.HasPrefix(bindTo, "tcp://[")

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - a curve server socket allowing any client
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	errs := []error{
		socket.SetCurveServer(1),
		socket.SetCurveSecretkey(string(privateKey)),
		socket.SetZapDomain(zapDomain),
		socket.SetIdentity(string(publicKey)),
		socket.SetIpv6(v6),
		socket.SetLinger(0),
		socket.SetHeartbeatIvl(heartbeatInterval),
		socket.SetHeartbeatTimeout(heartbeatTimeout),
		socket.SetHeartbeatTtl(heartbeatTTL),
	}
	for _, err := range errs {
		if nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}
