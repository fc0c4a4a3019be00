// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/command/registry-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "client for the kitty and claim registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/registry-cli/registry-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD`",
			EnvVar: "REGISTRY_CLI_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " generate a testnet key pair",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise registry-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, C",
					Value: "",
					Usage: "*registryd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " use testnet accounts",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "create",
			Usage:  "create a new kitty owned by the identity",
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "breed a new kitty from two existing kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "parent1, a",
					Value: 0,
					Usage: "*first parent `ID`",
				},
				cli.Uint64Flag{
					Name:  "parent2, b",
					Value: 0,
					Usage: "*second parent `ID`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "kitty, k",
					Value: 0,
					Usage: "*kitty `ID` to transfer",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "kitty",
			Usage:     "display one kitty or a page of kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "kitty, k",
					Value: 0,
					Usage: " kitty `ID` to display",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " list `COUNT` kitties from the id",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "create-claim",
			Usage:     "register a proof of existence claim",
			ArgsUsage: "\n   (* = required)",
			Flags:     claimFlags(),
			Action:    runCreateClaim,
		},
		{
			Name:      "revoke-claim",
			Usage:     "remove a claim owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     claimFlags(),
			Action:    runRevokeClaim,
		},
		{
			Name:      "transfer-claim",
			Usage:     "give a claim to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append(claimFlags(),
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the claim `ACCOUNT`",
				},
			),
			Action: runTransferClaim,
		},
		{
			Name:      "claim",
			Usage:     "display the owner and block of a claim",
			ArgsUsage: "\n   (* = required)",
			Flags:     claimFlags(),
			Action:    runClaim,
		},
		{
			Name:   "identities",
			Usage:  "display registry-cli identities",
			Action: runIdentities,
		},
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file, err := configurationFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		switch command {
		case "generate":
			return nil

		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		m.config, err = configuration.GetConfiguration(file)
		return err
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}

// explicit file or the default under XDG_CONFIG_HOME
func configurationFile(file string, name string) (string, error) {
	if "" != file {
		return filepath.Abs(file)
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return filepath.Join(p, name, name+".json"), nil
}
