// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/command/registry-cli/encrypt"
	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/registryd/fault"
)

func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

func printJson(handle io.Writer, data interface{}) {
	if b, err := json.MarshalIndent(data, "", "  "); nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
	} else {
		fmt.Fprintf(handle, "%s\n", b)
	}
}

// the password flag, or prompt on the terminal
func getPassword(c *cli.Context, prompt string) (string, error) {
	password := c.GlobalString("password")
	if "" != password {
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", fault.InvalidIdentityPassword
	}
	fmt.Fprintf(c.App.ErrWriter, "%s: ", prompt)
	b, err := terminal.ReadPassword(fd)
	fmt.Fprintf(c.App.ErrWriter, "\n")
	if nil != err {
		return "", err
	}
	return string(b), nil
}

// new identity passwords are entered twice
func getNewPassword(c *cli.Context) (string, error) {
	if "" != c.GlobalString("password") {
		return c.GlobalString("password"), nil
	}
	password, err := getPassword(c, "set identity password (length >= 8)")
	if nil != err {
		return "", err
	}
	verify, err := getPassword(c, "verify password")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.InvalidIdentityPassword
	}
	return password, nil
}

func identityName(c *cli.Context, m *metadata) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return name
}

// unlock the selected identity
func getPrivateKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	identity, err := m.config.Identity(identityName(c, m))
	if nil != err {
		return nil, err
	}
	password, err := getPassword(c, "password for: "+identity.Name)
	if nil != err {
		return nil, err
	}
	keyPair, err := encrypt.Unlock(password, identity)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", identity.Name, keyPair.Account)
	}
	return keyPair.PrivateKey, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.config.Connect {
		return nil, fmt.Errorf("no connection configured")
	}
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}

// claim from the command line: text, or hex with --hex
func getClaim(c *cli.Context) (claims.Claim, error) {
	data := c.String("data")
	if "" == data {
		return nil, fault.ClaimEmpty
	}
	if c.Bool("hex") {
		b, err := hex.DecodeString(data)
		if nil != err {
			return nil, err
		}
		data = string(b)
	}
	claim := claims.Claim(data)
	if err := claims.CheckClaim(claim); nil != err {
		return nil, err
	}
	return claim, nil
}

func claimFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "data, d",
			Value: "",
			Usage: "*claim `DATA`",
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: " claim data is hex encoded",
		},
	}
}
