// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/kitties"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// registry side of the sequencer
type registryCounts interface {
	Height() uint64
	NextKittyId() kitties.KittyId
	Statistics() (uint64, uint64)
}

// event queue losses
type dropCounts interface {
	Dropped() uint64
}

type statsSample struct {
	height      uint64
	nextKittyId kitties.KittyId
	applied     uint64
	rejected    uint64
	dropped     uint64
	allocated   uint64
	goroutines  int
}

// periodic log of registry progress and memory use
type stats struct {
	log      *logger.L
	registry registryCounts
	queue    dropCounts
	previous statsSample
}

func newStats(registry registryCounts, queue dropCounts) *stats {
	return &stats{
		log:      logger.New("stats"),
		registry: registry,
		queue:    queue,
	}
}

func (s *stats) sample() statsSample {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	applied, rejected := s.registry.Statistics()
	return statsSample{
		height:      s.registry.Height(),
		nextKittyId: s.registry.NextKittyId(),
		applied:     applied,
		rejected:    rejected,
		dropped:     s.queue.Dropped(),
		allocated:   m.Alloc / mega,
		goroutines:  runtime.NumGoroutine(),
	}
}

// log one sample with the change in request counts since the last one
func (s *stats) report() statsSample {
	current := s.sample()

	s.log.Infof("height: %d  next kitty: %d  applied: %d (+%d)  rejected: %d (+%d)  events dropped: %d",
		current.height, current.nextKittyId,
		current.applied, current.applied-s.previous.applied,
		current.rejected, current.rejected-s.previous.rejected,
		current.dropped,
	)
	s.log.Infof("allocated: %d M  goroutines: %d", current.allocated, current.goroutines)

	s.previous = current
	return current
}

// Run - background process
func (s *stats) Run(args interface{}, shutdown <-chan struct{}) {
	delay := statsDelay
	if d, ok := args.(time.Duration); ok && d > 0 {
		delay = d
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report()
		}
	}
	s.report()
}
