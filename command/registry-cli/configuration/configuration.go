// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/command/registry-cli/encrypt"
	"github.com/bitmark-inc/registryd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string             `json:"default_identity"`
	TestNet         bool               `json:"testnet"`
	Connect         string             `json:"connect"`
	Identities      []encrypt.Identity `json:"identities"`
}

// InfoIdentity - restricted access to data (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connect         string         `json:"connect"`
	Identities      []InfoIdentity `json:"identities"`
}

func (s *InfoConfiguration) Len() int {
	return len(s.Identities)
}

func (s *InfoConfiguration) Swap(i, j int) {
	s.Identities[i], s.Identities[j] = s.Identities[j], s.Identities[i]
}

func (s *InfoConfiguration) Less(i int, j int) bool {
	return s.Identities[i].Name < s.Identities[j].Name
}

// GetConfiguration - full access to data (includes private data)
func GetConfiguration(filename string) (*Configuration, error) {
	options := &Configuration{}
	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	return options, nil
}

// GetInfoConfiguration - restricted access to data (excludes private items)
func GetInfoConfiguration(filename string) (*InfoConfiguration, error) {
	options := &InfoConfiguration{}
	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	sort.Sort(options)
	return options, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*encrypt.Identity, error) {
	for i := range config.Identities {
		if name == config.Identities[i].Name {
			return &config.Identities[i], nil
		}
	}
	return nil, fault.IdentityNameNotFound
}

// Account - resolve a name from the identities, or decode a base58 account
func (config *Configuration) Account(nameOrAccount string) (*account.Account, error) {
	id, err := config.Identity(nameOrAccount)
	if nil == err {
		return account.AccountFromBase58(id.Account)
	}
	return account.AccountFromBase58(nameOrAccount)
}

// AddIdentity - store an encrypted identity
func (config *Configuration) AddIdentity(identity *encrypt.Identity) error {
	if _, err := config.Identity(identity.Name); nil == err {
		return fault.IdentityNameAlreadyExists
	}
	config.Identities = append(config.Identities, *identity)
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = identity.Name
	}
	return nil
}

// Save - write the configuration, keeping the previous file as a backup
func Save(filename string, config *Configuration) error {
	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}
	b = append(b, '\n')

	os.Remove(tempFile)
	f, err := os.OpenFile(tempFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	_, err = f.Write(b)
	f.Close()
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(options)
}
