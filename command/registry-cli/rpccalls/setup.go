// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
	nonce   uint64
}

// NewClient - create a RPC connection to a registryd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the registryd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	if c.verbose {
		fmt.Fprintf(c.handle, "reply: %+v\n", reply)
	}
	return nil
}

// request nonces follow the clock so separate runs keep increasing
func (c *Client) nextNonce() uint64 {
	n := uint64(time.Now().UnixNano())
	if n <= c.nonce {
		n = c.nonce + 1
	}
	c.nonce = n
	return n
}
