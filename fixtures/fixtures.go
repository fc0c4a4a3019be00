// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed accounts for registry tests, these cannot sign
var (
	Account1 = NothingAccount(1)
	Account2 = NothingAccount(2)
	Account3 = NothingAccount(3)
)

// NothingAccount - a short test account numbered n
func NothingAccount(n uint16) *account.Account {
	return &account.Account{
		AccountInterface: &account.NothingAccount{
			Test:      true,
			PublicKey: []byte{byte(n >> 8), byte(n)},
		},
	}
}

// SetupTestLogger - log to a temporary directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
