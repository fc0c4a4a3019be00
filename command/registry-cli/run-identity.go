// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/command/registry-cli/configuration"
	"github.com/bitmark-inc/registryd/command/registry-cli/encrypt"
	"github.com/bitmark-inc/registryd/keypair"
)

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair(c.Bool("testnet"))
	if nil != err {
		return err
	}

	printJson(m.w, rawKeyPair)
	return nil
}

func runSetup(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	connect := c.String("connect")
	if "" == connect {
		return fmt.Errorf("connect is required")
	}

	m.config = &configuration.Configuration{
		TestNet: c.Bool("testnet"),
		Connect: connect,
	}
	err := addIdentity(c, m)
	if nil != err {
		return err
	}
	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	err := addIdentity(c, m)
	if nil != err {
		return err
	}
	m.save = true
	return nil
}

func addIdentity(c *cli.Context, m *metadata) error {
	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("identity name is required")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("description is required")
	}
	if _, err := m.config.Identity(name); nil == err {
		return fmt.Errorf("identity: %q already exists", name)
	}

	password, err := getNewPassword(c)
	if nil != err {
		return err
	}

	identity, keyPair, err := encrypt.MakeIdentity(name, description, c.String("seed"), password, m.config.TestNet)
	if nil != err {
		return err
	}

	err = m.config.AddIdentity(identity)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "added identity: %s  account: %s\n", name, keyPair.Account)
	}
	printJson(m.w, configuration.InfoIdentity{
		Name:        identity.Name,
		Description: identity.Description,
		Account:     identity.Account,
	})
	return nil
}

func runIdentities(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	info, err := configuration.GetInfoConfiguration(m.file)
	if nil != err {
		return err
	}
	printJson(m.w, info)
	return nil
}
