// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runCreateClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	claim, err := getClaim(c)
	if nil != err {
		return err
	}
	key, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateClaim(key, claim)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runRevokeClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	claim, err := getClaim(c)
	if nil != err {
		return err
	}
	key, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RevokeClaim(key, claim)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runTransferClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	claim, err := getClaim(c)
	if nil != err {
		return err
	}
	dest, err := m.config.Account(c.String("receiver"))
	if nil != err {
		return err
	}
	key, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.TransferClaim(key, claim, dest)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	claim, err := getClaim(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	proof, err := client.GetClaim(claim)
	if nil != err {
		return err
	}
	printJson(m.w, proof)
	return nil
}
