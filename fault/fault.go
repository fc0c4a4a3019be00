// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OwnerError GenericError
type ProcessError GenericError
type RecordError GenericError

// registry errors - these are returned verbatim to the caller
var (
	ClaimNotExist     = NotFoundError("claim does not exist")
	InvalidIdentifier = InvalidError("invalid identifier")
	NotClaimOwner     = OwnerError("not claim owner")
	NotOwner          = OwnerError("not owner")
	ProofAlreadyExist = ExistsError("proof already exists")
	SameKittyId       = InvalidError("same kitty id")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = InvalidError("already initialised")
	CannotDecodeAccount       = RecordError("cannot decode account")
	CannotDecodeSeed          = RecordError("cannot decode seed")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	ClaimEmpty                = LengthError("claim is empty")
	ClaimTooLong              = LengthError("claim is too long")
	ConfigurationNotTable     = InvalidError("configuration did not return a table")
	DatabaseIsNotSet          = ProcessError("database is not set")
	DatabaseVersionMismatch   = InvalidError("database version mismatch")
	IdentifierTooLarge        = InvalidError("identifier too large for type")
	IdentityNameAlreadyExists = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidIPAddress          = InvalidError("invalid IP address")
	InvalidIdentityPassword   = InvalidError("invalid identity password")
	InvalidKeyLength          = InvalidError("invalid key length")
	InvalidKeyType            = InvalidError("invalid key type")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKeyFile     = InvalidError("invalid private key file")
	InvalidPublicKeyFile      = InvalidError("invalid public key file")
	InvalidSeedHeader         = InvalidError("invalid seed header")
	InvalidSeedLength         = InvalidError("invalid seed length")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists      = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = InvalidError("not private key")
	NotPublicKey              = InvalidError("not public key")
	QueueFull                 = ProcessError("request queue is full")
	RateLimiting              = InvalidError("rate limiting")
	RecordCorrupt             = RecordError("record is corrupt")
	SequencerStopped          = ProcessError("sequencer stopped")
	StaleNonce                = InvalidError("nonce already used")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	TransactionNotInUse       = ProcessError("transaction not in use")
	UnknownCommand            = NotFoundError("unknown command")
	UnknownOperation          = NotFoundError("unknown operation")
	WrongNetworkForPublicKey  = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e OwnerError) Error() string    { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrOwner(e error) bool    { _, ok := e.(OwnerError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
