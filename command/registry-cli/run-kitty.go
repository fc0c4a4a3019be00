// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/kitties"
)

func kittyId(c *cli.Context, name string) (kitties.KittyId, error) {
	n := c.Uint64(name)
	if n > math.MaxUint32 {
		return 0, fault.IdentifierTooLarge
	}
	return kitties.KittyId(n), nil
}

func runCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateKitty(key)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runBreed(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("parent1") || !c.IsSet("parent2") {
		return fmt.Errorf("both parents are required")
	}
	parent1, err := kittyId(c, "parent1")
	if nil != err {
		return err
	}
	parent2, err := kittyId(c, "parent2")
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

	reply, err := client.BreedKitty(key, parent1, parent2)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("kitty") {
		return fmt.Errorf("kitty id is required")
	}
	id, err := kittyId(c, "kitty")
	if nil != err {
		return err
	}
	to, err := m.config.Account(c.String("receiver"))
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

	reply, err := client.TransferKitty(key, to, id)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runKitty(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := kittyId(c, "kitty")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if count := c.Int("count"); count > 0 {
		reply, err := client.ListKitties(id, count)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	record, err := client.GetKitty(id)
	if nil != err {
		return err
	}
	printJson(m.w, record)
	return nil
}
