// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/claim"
)

// CreateClaim - record a claim owned by the key's account
func (c *Client) CreateClaim(key *account.PrivateKey, data claims.Claim) (*claim.SubmitReply, error) {
	return c.simpleClaim("Claim.Create", request.CreateClaim, key, data)
}

// RevokeClaim - delete a claim owned by the key's account
func (c *Client) RevokeClaim(key *account.PrivateKey, data claims.Claim) (*claim.SubmitReply, error) {
	return c.simpleClaim("Claim.Revoke", request.RevokeClaim, key, data)
}

func (c *Client) simpleClaim(method string, operation request.Operation, key *account.PrivateKey, data claims.Claim) (*claim.SubmitReply, error) {
	r := &request.Request{
		Operation: operation,
		Caller:    key.Account(),
		Nonce:     c.nextNonce(),
		Claim:     data,
	}
	if err := r.Sign(key); nil != err {
		return nil, err
	}

	arguments := claim.Arguments{
		Caller:    r.Caller,
		Nonce:     r.Nonce,
		Claim:     data,
		Signature: r.Signature,
	}
	var reply claim.SubmitReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferClaim - give a claim to another account
func (c *Client) TransferClaim(key *account.PrivateKey, data claims.Claim, dest *account.Account) (*claim.SubmitReply, error) {
	r := &request.Request{
		Operation: request.TransferClaim,
		Caller:    key.Account(),
		Nonce:     c.nextNonce(),
		Claim:     data,
		To:        dest,
	}
	if err := r.Sign(key); nil != err {
		return nil, err
	}

	arguments := claim.TransferArguments{
		Caller:    r.Caller,
		Nonce:     r.Nonce,
		Claim:     data,
		Dest:      dest,
		Signature: r.Signature,
	}
	var reply claim.SubmitReply
	if err := c.call("Claim.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetClaim - fetch the proof of a live claim
func (c *Client) GetClaim(data claims.Claim) (*claims.Proof, error) {
	arguments := claim.GetArguments{
		Claim: data,
	}
	var reply claim.GetReply
	if err := c.call("Claim.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Proof, nil
}
