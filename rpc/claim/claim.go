// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
	"github.com/bitmark-inc/registryd/sequencer"
)

// ClaimReader - committed state accessors
type ClaimReader interface {
	Claim(claims.Claim) (*claims.Proof, bool)
	List(claims.Claim, int) ([]*claims.Entry, claims.Claim, error)
}

// Claim - type for the RPC
type Claim struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Reader    ClaimReader
	Submitter sequencer.Submitter
}

const (
	maximumClaims   = 100
	rateLimitClaims = 200
	rateBurstClaims = 100
)

// New - create the RPC service
func New(log *logger.L, reader ClaimReader, submitter sequencer.Submitter) *Claim {
	return &Claim{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitClaims, rateBurstClaims),
		Reader:    reader,
		Submitter: submitter,
	}
}

// ---

// Arguments - arguments for create and revoke
type Arguments struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Claim     claims.Claim      `json:"claim"`
	Signature account.Signature `json:"signature"`
}

// TransferArguments - arguments for transfer
type TransferArguments struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Claim     claims.Claim      `json:"claim"`
	Dest      *account.Account  `json:"dest"`
	Signature account.Signature `json:"signature"`
}

// SubmitReply - results from a state changing request
type SubmitReply struct {
	Block uint64 `json:"block"`
}

// Create - record a new claim owned by the caller
func (c *Claim) Create(arguments *Arguments, reply *SubmitReply) error {
	return c.simple(request.CreateClaim, arguments, reply)
}

// Revoke - delete a claim owned by the caller
func (c *Claim) Revoke(arguments *Arguments, reply *SubmitReply) error {
	return c.simple(request.RevokeClaim, arguments, reply)
}

// Transfer - give a claim owned by the caller to dest
func (c *Claim) Transfer(arguments *TransferArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Dest {
		return fault.MissingParameters
	}

	c.Log.Infof("Claim.Transfer: caller: %s  claim: %s  dest: %s", arguments.Caller, arguments.Claim, arguments.Dest)

	return c.submit(&request.Request{
		Operation: request.TransferClaim,
		Caller:    arguments.Caller,
		Nonce:     arguments.Nonce,
		Claim:     arguments.Claim,
		To:        arguments.Dest,
		Signature: arguments.Signature,
	}, reply)
}

func (c *Claim) simple(operation request.Operation, arguments *Arguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	c.Log.Infof("Claim.%s: caller: %s  claim: %s", operation, arguments.Caller, arguments.Claim)

	return c.submit(&request.Request{
		Operation: operation,
		Caller:    arguments.Caller,
		Nonce:     arguments.Nonce,
		Claim:     arguments.Claim,
		Signature: arguments.Signature,
	}, reply)
}

func (c *Claim) submit(r *request.Request, reply *SubmitReply) error {
	result, err := c.Submitter.Submit(r)
	if nil != err {
		c.Log.Debugf("%s error: %s", r.Operation, err)
		return err
	}
	reply.Block = result.Block
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Claim claims.Claim `json:"claim"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Proof *claims.Proof `json:"proof"`
}

// Get - fetch the owner and block of a live claim
func (c *Claim) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := claims.CheckClaim(arguments.Claim); nil != err {
		return err
	}

	proof, ok := c.Reader.Claim(arguments.Claim)
	if !ok {
		return fault.ClaimNotExist
	}
	reply.Proof = proof
	return nil
}

// ---

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start claims.Claim `json:"start"`
	Count int          `json:"count"`
}

// ListReply - results from list RPC request
type ListReply struct {
	Claims    []*claims.Entry `json:"claims"`
	NextStart claims.Claim    `json:"next_start"`
}

// List - page through live claims in byte order
func (c *Claim) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumClaims); nil != err {
		return err
	}

	entries, next, err := c.Reader.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Claims = entries
	reply.NextStart = next
	return nil
}
