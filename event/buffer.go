// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Buffer - collect the events of a single request
//
// not safe for concurrent use, a request runs on one goroutine
type Buffer struct {
	events []Event
}

// Send - append an event
func (b *Buffer) Send(e Event) {
	b.events = append(b.events, e)
}

// Events - everything sent so far in order
func (b *Buffer) Events() []Event {
	return b.events
}

// Reset - discard, e.g. after an aborted transaction
func (b *Buffer) Reset() {
	b.events = nil
}
