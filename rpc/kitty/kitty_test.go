// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/kitties"
	"github.com/bitmark-inc/registryd/request"
	"github.com/bitmark-inc/registryd/rpc/kitty"
	"github.com/bitmark-inc/registryd/rpc/mocks"
	"github.com/bitmark-inc/registryd/sequencer"
)

func TestKittyCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKittyReader(ctl)
	s := mocks.NewMockSubmitter(ctl)

	k := kitty.New(logger.New(fixtures.LogCategory), r, s)

	s.EXPECT().Submit(gomock.Any()).DoAndReturn(func(req *request.Request) (*sequencer.Result, error) {
		assert.Equal(t, request.CreateKitty, req.Operation, "wrong operation")
		assert.Equal(t, fixtures.Account1, req.Caller, "wrong caller")
		return &sequencer.Result{KittyId: 4, Block: 9}, nil
	}).Times(1)

	var reply kitty.SubmitReply
	err := k.Create(&kitty.CreateArguments{Caller: fixtures.Account1}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, kitties.KittyId(4), reply.KittyId, "wrong id")
	assert.Equal(t, uint64(9), reply.Block, "wrong block")
}

func TestKittyBreedAndTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKittyReader(ctl)
	s := mocks.NewMockSubmitter(ctl)

	k := kitty.New(logger.New(fixtures.LogCategory), r, s)

	s.EXPECT().Submit(&request.Request{
		Operation: request.BreedKitty,
		Caller:    fixtures.Account1,
		Nonce:     5,
		Parent1:   1,
		Parent2:   2,
	}).Return(nil, fault.SameKittyId).Times(1)

	var reply kitty.SubmitReply
	err := k.Breed(&kitty.BreedArguments{Caller: fixtures.Account1, Nonce: 5, Parent1: 1, Parent2: 2}, &reply)
	assert.Equal(t, fault.SameKittyId, err, "wrong Breed error")

	s.EXPECT().Submit(&request.Request{
		Operation: request.TransferKitty,
		Caller:    fixtures.Account1,
		To:        fixtures.Account2,
		KittyId:   3,
	}).Return(&sequencer.Result{KittyId: 3, Block: 2}, nil).Times(1)

	err = k.Transfer(&kitty.TransferArguments{Caller: fixtures.Account1, To: fixtures.Account2, KittyId: 3}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, uint64(2), reply.Block, "wrong block")

	err = k.Transfer(&kitty.TransferArguments{Caller: fixtures.Account1, KittyId: 3}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing recipient")
}

func TestKittyGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKittyReader(ctl)
	s := mocks.NewMockSubmitter(ctl)

	k := kitty.New(logger.New(fixtures.LogCategory), r, s)

	record := &kitties.Record{
		KittyId: 1,
		Owner:   fixtures.Account3,
	}
	r.EXPECT().Get(kitties.KittyId(1)).Return(record, true).Times(1)
	r.EXPECT().Get(kitties.KittyId(2)).Return(nil, false).Times(1)

	var reply kitty.GetReply
	err := k.Get(&kitty.GetArguments{KittyId: 1}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply.Kitty, "wrong record")

	err = k.Get(&kitty.GetArguments{KittyId: 2}, &reply)
	assert.Equal(t, fault.InvalidIdentifier, err, "missing kitty")
}

func TestKittyList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKittyReader(ctl)
	s := mocks.NewMockSubmitter(ctl)

	k := kitty.New(logger.New(fixtures.LogCategory), r, s)

	records := []*kitties.Record{
		{KittyId: 5},
		{KittyId: 6},
	}
	r.EXPECT().List(kitties.KittyId(5), 2).Return(records, kitties.KittyId(7), nil).Times(1)
	r.EXPECT().NextKittyId().Return(kitties.KittyId(10)).Times(1)

	var reply kitty.ListReply
	err := k.List(&kitty.ListArguments{Start: 5, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, records, reply.Kitties, "wrong records")
	assert.Equal(t, kitties.KittyId(7), reply.NextStart, "wrong next start")
	assert.Equal(t, kitties.KittyId(10), reply.NextKittyId, "wrong next id")

	err = k.List(&kitty.ListArguments{Start: 5, Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count above maximum")
}
