// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/kitty"
)

// CreateKitty - issue a new kitty owned by the key's account
func (c *Client) CreateKitty(key *account.PrivateKey) (*kitty.SubmitReply, error) {
	r := &request.Request{
		Operation: request.CreateKitty,
		Caller:    key.Account(),
		Nonce:     c.nextNonce(),
	}
	if err := r.Sign(key); nil != err {
		return nil, err
	}

	arguments := kitty.CreateArguments{
		Caller:    r.Caller,
		Nonce:     r.Nonce,
		Signature: r.Signature,
	}
	var reply kitty.SubmitReply
	if err := c.call("Kitty.Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// BreedKitty - issue a kitty from two parents
func (c *Client) BreedKitty(key *account.PrivateKey, parent1 kitties.KittyId, parent2 kitties.KittyId) (*kitty.SubmitReply, error) {
	r := &request.Request{
		Operation: request.BreedKitty,
		Caller:    key.Account(),
		Nonce:     c.nextNonce(),
		Parent1:   parent1,
		Parent2:   parent2,
	}
	if err := r.Sign(key); nil != err {
		return nil, err
	}

	arguments := kitty.BreedArguments{
		Caller:    r.Caller,
		Nonce:     r.Nonce,
		Parent1:   parent1,
		Parent2:   parent2,
		Signature: r.Signature,
	}
	var reply kitty.SubmitReply
	if err := c.call("Kitty.Breed", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferKitty - give a kitty to another account
func (c *Client) TransferKitty(key *account.PrivateKey, to *account.Account, id kitties.KittyId) (*kitty.SubmitReply, error) {
	r := &request.Request{
		Operation: request.TransferKitty,
		Caller:    key.Account(),
		Nonce:     c.nextNonce(),
		To:        to,
		KittyId:   id,
	}
	if err := r.Sign(key); nil != err {
		return nil, err
	}

	arguments := kitty.TransferArguments{
		Caller:    r.Caller,
		Nonce:     r.Nonce,
		To:        to,
		KittyId:   id,
		Signature: r.Signature,
	}
	var reply kitty.SubmitReply
	if err := c.call("Kitty.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetKitty - fetch a committed kitty
func (c *Client) GetKitty(id kitties.KittyId) (*kitties.Record, error) {
	arguments := kitty.GetArguments{
		KittyId: id,
	}
	var reply kitty.GetReply
	if err := c.call("Kitty.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Kitty, nil
}

// ListKitties - one page of kitties from start
func (c *Client) ListKitties(start kitties.KittyId, count int) (*kitty.ListReply, error) {
	arguments := kitty.ListArguments{
		Start: start,
		Count: count,
	}
	var reply kitty.ListReply
	if err := c.call("Kitty.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
