// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners serving JSON-RPC
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Close()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	listeners       []net.Listener
}

// NewRPC - validate the configuration and create a listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	listen := make([]string, len(configuration.Listen))
	copy(listen, configuration.Listen)

	ipType, err := parseListenAddress(listen, log)
	if nil != err {
		return nil, err
	}

	return &rpcListener{
		log:             log,
		count:           count,
		server:          server,
		maxConnections:  configuration.MaximumConnections,
		tlsConfig:       tlsConfig,
		ipType:          ipType,
		listenIPAndPort: listen,
	}, nil
}

// Serve - bind every address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Close - stop accepting, open connections finish their current call
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// "*:PORT" becomes "[::]:PORT" and listens on both tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, fault.InvalidIPAddress
		}

		switch {
		case "*" == host:
			addrs[i] = "[::]:" + port
			host = "::"
			parsed[i] = "tcp"
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIPAddress
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, err
		}
	}
	return parsed, nil
}
