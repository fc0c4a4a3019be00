// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc/node"
)

// GetNodeInfo - request status from registryd
func (c *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
