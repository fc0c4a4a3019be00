// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publish.public")
	privateFile := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "make key pair")

	public, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(public), "public length")

	private, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(private), "private length")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private read as public")

	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public read as private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite allowed")
}

func TestParseKey(t *testing.T) {
	key := strings.Repeat("0a", 32)

	tests := []struct {
		text    string
		private bool
		err     error
	}{
		{"PUBLIC:" + key, false, nil},
		{"  PRIVATE:" + key + "\n", true, nil},
		{"PUBLIC:" + key[2:], false, fault.InvalidPublicKeyFile},
		{"PRIVATE:" + key[2:], false, fault.InvalidPrivateKeyFile},
		{"PRIVATE:zz" + key[2:], false, fault.InvalidPrivateKeyFile},
		{"SECRET:" + key, false, fault.InvalidPublicKeyFile},
	}

	for i, item := range tests {
		data, private, err := zmqutil.ParseKey(item.text)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil == item.err {
			assert.Equal(t, item.private, private, "%d: private flag", i)
			assert.Equal(t, 32, len(data), "%d: length", i)
		}
	}
}
