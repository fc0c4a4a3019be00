// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/registryd/data", util.EnsureAbsolute("/var/lib/registryd", "data"), "relative")
	assert.Equal(t, "/tmp/data", util.EnsureAbsolute("/var/lib/registryd", "/tmp/data"), "absolute")
	assert.Equal(t, "/var/lib/data", util.EnsureAbsolute("/var/lib/registryd", "../data/."), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "util-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(base)

	dir := filepath.Join(base, "a", "b")
	assert.False(t, util.EnsureFileExists(dir), "before create")
	assert.Nil(t, util.EnsureDirectory(dir), "create")
	assert.True(t, util.EnsureFileExists(dir), "after create")
}
