// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// certificates are valid for this long
const validity = 10 * 365 * 24 * time.Hour

// Get - load a certificate and key pair from PEM files and return the
// server TLS configuration with the certificate's fingerprint
func Get(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, fin, fault.MissingParameters
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, fin, fault.MissingParameters
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// MakeSelfSigned - create a self-signed certificate and key file
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, override bool, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "registryd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(certificateFileName, cert, 0666)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(keyFileName, key, 0600)
	if nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in registryd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
