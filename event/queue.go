// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"
)

// Queue - broadcast committed events to any number of listeners
//
// a listener whose channel is full misses the event, Send never blocks
type Queue struct {
	sync.Mutex
	listeners map[chan Record]struct{}
	dropped   uint64
}

// NewQueue - empty queue
func NewQueue() *Queue {
	return &Queue{
		listeners: make(map[chan Record]struct{}),
	}
}

// Listen - a new listener channel with the given buffer size
func (q *Queue) Listen(size int) <-chan Record {
	c := make(chan Record, size)
	q.Lock()
	q.listeners[c] = struct{}{}
	q.Unlock()
	return c
}

// Release - stop delivery to a listener and close its channel
func (q *Queue) Release(listener <-chan Record) {
	q.Lock()
	defer q.Unlock()
	for c := range q.listeners {
		if c == listener {
			delete(q.listeners, c)
			close(c)
			return
		}
	}
}

// Send - deliver a block's events to every listener
func (q *Queue) Send(block uint64, events []Event) {
	q.Lock()
	defer q.Unlock()
	for _, e := range events {
		r := Record{
			Block: block,
			Event: e,
		}
		for c := range q.listeners {
			select {
			case c <- r:
			default:
				q.dropped += 1
			}
		}
	}
}

// Dropped - count of deliveries lost to full listeners
func (q *Queue) Dropped() uint64 {
	q.Lock()
	defer q.Unlock()
	return q.dropped
}
