// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequencer - apply requests to the registries one at a time
//
// Each accepted request becomes one block: the block counter is
// advanced in the same batch as the registry writes so a failed
// request leaves no trace. Events are forwarded to the queue only
// after the commit succeeds.
//
// Every caller carries a nonce which must be larger than the last
// nonce accepted from that account. An authenticated request that
// the registries reject still uses up its nonce so the signed
// envelope cannot be applied later.
package sequencer

import (
	"math"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/allocator"
	"github.com/bitmark-inc/registryd/claims"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/storage"
)

// AuthenticateFunc - resolve the caller of a request
type AuthenticateFunc func(*request.Request) (*account.Account, error)

// Submitter - anything that applies requests
type Submitter interface {
	Submit(*request.Request) (*Result, error)
}

// Result - outcome of a committed request
type Result struct {
	KittyId kitties.KittyId `json:"kitty_id"`
	Block   uint64          `json:"block"`
	Events  []event.Event   `json:"-"`
}

type pending struct {
	request *request.Request
	reply   chan reply
}

type reply struct {
	result *Result
	err    error
}

// Sequencer - owner of the single writer goroutine
type Sequencer struct {
	log          *logger.L
	store        *storage.Store
	queue        *event.Queue
	authenticate AuthenticateFunc

	kitties *kitties.Registry
	claims  *claims.Registry
	blocks  *allocator.Allocator
	nonces  storage.Handle

	requests chan pending
	done     chan struct{}

	// set only on the Run goroutine while a request is applied
	current uint64

	applied  counter.Counter
	rejected counter.Counter
}

// counter record holding the number of committed blocks
var blockCountKey = []byte("block")

// New - create a sequencer and the registries it drives
func New(log *logger.L, store *storage.Store, queue *event.Queue, queueSize int, authenticate AuthenticateFunc) *Sequencer {
	s := &Sequencer{
		log:          log,
		store:        store,
		queue:        queue,
		authenticate: authenticate,
		blocks:       allocator.New(store.Pool.Counters, blockCountKey),
		nonces:       store.Pool.Nonces,
		requests:     make(chan pending, queueSize),
		done:         make(chan struct{}),
	}

	s.kitties = kitties.New(
		logger.New("kitties"),
		kitties.Handles{
			Kitties:  store.Pool.Kitties,
			Owners:   store.Pool.KittyOwner,
			Parents:  store.Pool.KittyParents,
			Counters: store.Pool.Counters,
		},
		s.BlockNumber,
	)
	s.claims = claims.New(
		logger.New("claims"),
		claims.Handles{
			Proofs: store.Pool.Proofs,
		},
		s.BlockNumber,
	)
	return s
}

// Kitties - the asset registry, for accessors
func (s *Sequencer) Kitties() *kitties.Registry {
	return s.kitties
}

// Claims - the claim registry, for accessors
func (s *Sequencer) Claims() *claims.Registry {
	return s.claims
}

// BlockNumber - number of the block being applied
//
// only meaningful on the sequencer goroutine
func (s *Sequencer) BlockNumber() uint64 {
	return s.current
}

// Height - number of committed blocks
func (s *Sequencer) Height() uint64 {
	return s.blocks.Peek()
}

// NextKittyId - the id the next kitty will receive
func (s *Sequencer) NextKittyId() kitties.KittyId {
	return s.kitties.NextKittyId()
}

// Nonce - last committed nonce of an account, zero if none
func (s *Sequencer) Nonce(a *account.Account) uint64 {
	n, _ := s.nonces.GetN(a.Bytes())
	return n
}

// Statistics - count of applied and rejected requests since start
func (s *Sequencer) Statistics() (uint64, uint64) {
	return s.applied.Uint64(), s.rejected.Uint64()
}

// Submit - queue a request and wait for its result
func (s *Sequencer) Submit(r *request.Request) (*Result, error) {
	select {
	case <-s.done:
		return nil, fault.SequencerStopped
	default:
	}

	p := pending{
		request: r,
		reply:   make(chan reply, 1),
	}

	select {
	case s.requests <- p:
	default:
		return nil, fault.QueueFull
	}

	select {
	case rep := <-p.reply:
		return rep.result, rep.err
	case <-s.done:
		return nil, fault.SequencerStopped
	}
}

// Run - background process applying queued requests
func (s *Sequencer) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case p := <-s.requests:
			result, err := s.apply(p.request)
			if nil != err {
				s.rejected.Increment()
				log.Debugf("%s rejected: %s", p.request.Operation, err)
			} else {
				s.applied.Increment()
				log.Debugf("%s applied: block: %d", p.request.Operation, result.Block)
			}
			p.reply <- reply{
				result: result,
				err:    err,
			}
		}
	}
	close(s.done)

	log.Info("stopped")
}

func (s *Sequencer) apply(r *request.Request) (*Result, error) {
	caller, err := s.authenticate(r)
	if nil != err {
		return nil, err
	}

	trx, err := s.store.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	nonceKey := caller.Bytes()
	if last, _ := trx.GetN(s.nonces, nonceKey); r.Nonce <= last {
		trx.Abort()
		return nil, fault.StaleNonce
	}

	height, err := s.blocks.Next(trx, math.MaxUint64)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	s.current = height + 1
	defer func() {
		s.current = 0
	}()

	buffer := &event.Buffer{}
	result := &Result{
		Block: s.current,
	}

	switch r.Operation {
	case request.CreateKitty:
		result.KittyId, err = s.kitties.Create(trx, caller, buffer)
	case request.BreedKitty:
		result.KittyId, err = s.kitties.Breed(trx, caller, r.Parent1, r.Parent2, buffer)
	case request.TransferKitty:
		result.KittyId = r.KittyId
		err = s.kitties.Transfer(trx, caller, r.To, r.KittyId, buffer)
	case request.CreateClaim:
		err = s.claims.CreateClaim(trx, caller, r.Claim, buffer)
	case request.RevokeClaim:
		err = s.claims.RevokeClaim(trx, caller, r.Claim, buffer)
	case request.TransferClaim:
		err = s.claims.TransferClaim(trx, caller, r.Claim, r.To, buffer)
	default:
		err = fault.UnknownOperation
	}

	if nil != err {
		trx.Abort()
		s.consumeNonce(nonceKey, r.Nonce)
		return nil, err
	}

	trx.PutN(s.nonces, nonceKey, r.Nonce)

	err = trx.Commit()
	if nil != err {
		s.log.Criticalf("commit block: %d  error: %s", result.Block, err)
		return nil, err
	}

	result.Events = buffer.Events()
	s.queue.Send(result.Block, result.Events)

	return result, nil
}

// record the nonce of a rejected request on its own
func (s *Sequencer) consumeNonce(key []byte, nonce uint64) {
	trx, err := s.store.NewDBTransaction()
	if nil != err {
		s.log.Errorf("nonce transaction error: %s", err)
		return
	}
	trx.PutN(s.nonces, key, nonce)
	err = trx.Commit()
	if nil != err {
		s.log.Criticalf("commit nonce error: %s", err)
	}
}
