// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
	"github.com/bitmark-inc/registryd/sequencer"
)

// KittyReader - committed state accessors
type KittyReader interface {
	NextKittyId() kitties.KittyId
	Get(kitties.KittyId) (*kitties.Record, bool)
	List(kitties.KittyId, int) ([]*kitties.Record, kitties.KittyId, error)
}

// Kitty - type for the RPC
type Kitty struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Reader    KittyReader
	Submitter sequencer.Submitter
}

const (
	maximumKitties   = 100
	rateLimitKitties = 200
	rateBurstKitties = 100
)

// New - create the RPC service
func New(log *logger.L, reader KittyReader, submitter sequencer.Submitter) *Kitty {
	return &Kitty{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitKitties, rateBurstKitties),
		Reader:    reader,
		Submitter: submitter,
	}
}

// ---

// CreateArguments - arguments for RPC request
type CreateArguments struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Signature account.Signature `json:"signature"`
}

// BreedArguments - arguments for RPC request
type BreedArguments struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Parent1   kitties.KittyId   `json:"parent1"`
	Parent2   kitties.KittyId   `json:"parent2"`
	Signature account.Signature `json:"signature"`
}

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	To        *account.Account  `json:"to"`
	KittyId   kitties.KittyId   `json:"kitty_id"`
	Signature account.Signature `json:"signature"`
}

// SubmitReply - results from a state changing request
type SubmitReply struct {
	KittyId kitties.KittyId `json:"kitty_id"`
	Block   uint64          `json:"block"`
}

// Create - issue a new kitty to the caller
func (k *Kitty) Create(arguments *CreateArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitty.Create: caller: %s", arguments.Caller)

	return k.submit(&request.Request{
		Operation: request.CreateKitty,
		Caller:    arguments.Caller,
		Nonce:     arguments.Nonce,
		Signature: arguments.Signature,
	}, reply)
}

// Breed - issue a kitty combining two existing kitties
func (k *Kitty) Breed(arguments *BreedArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitty.Breed: caller: %s  parents: %d, %d", arguments.Caller, arguments.Parent1, arguments.Parent2)

	return k.submit(&request.Request{
		Operation: request.BreedKitty,
		Caller:    arguments.Caller,
		Nonce:     arguments.Nonce,
		Parent1:   arguments.Parent1,
		Parent2:   arguments.Parent2,
		Signature: arguments.Signature,
	}, reply)
}

// Transfer - change the owner of a kitty
func (k *Kitty) Transfer(arguments *TransferArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.To {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitty.Transfer: caller: %s  to: %s  id: %d", arguments.Caller, arguments.To, arguments.KittyId)

	return k.submit(&request.Request{
		Operation: request.TransferKitty,
		Caller:    arguments.Caller,
		Nonce:     arguments.Nonce,
		To:        arguments.To,
		KittyId:   arguments.KittyId,
		Signature: arguments.Signature,
	}, reply)
}

func (k *Kitty) submit(r *request.Request, reply *SubmitReply) error {
	result, err := k.Submitter.Submit(r)
	if nil != err {
		k.Log.Debugf("%s error: %s", r.Operation, err)
		return err
	}
	reply.KittyId = result.KittyId
	reply.Block = result.Block
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	KittyId kitties.KittyId `json:"kitty_id"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Kitty *kitties.Record `json:"kitty"`
}

// Get - fetch one committed kitty
func (k *Kitty) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, ok := k.Reader.Get(arguments.KittyId)
	if !ok {
		return fault.InvalidIdentifier
	}
	reply.Kitty = record
	return nil
}

// ---

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start kitties.KittyId `json:"start"`
	Count int             `json:"count"`
}

// ListReply - results from list RPC request
type ListReply struct {
	Kitties     []*kitties.Record `json:"kitties"`
	NextStart   kitties.KittyId   `json:"next_start"`
	NextKittyId kitties.KittyId   `json:"next_kitty_id"`
}

// List - page through committed kitties in id order
func (k *Kitty) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumKitties); nil != err {
		return err
	}

	records, next, err := k.Reader.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Kitties = records
	reply.NextStart = next
	reply.NextKittyId = k.Reader.NextKittyId()
	return nil
}
