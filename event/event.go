// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"
)

// Event - a typed record of one state change
type Event interface {
	Name() string
}

// Sink - destination for the events of an operation
type Sink interface {
	Send(Event)
}

// Record - a committed event and the block that contains it
type Record struct {
	Block uint64
	Event Event
}

// MarshalJSON - flatten to {"block":…, "event":name, "data":{…}}
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Block uint64 `json:"block"`
		Name  string `json:"event"`
		Data  Event  `json:"data"`
	}{
		Block: r.Block,
		Name:  r.Event.Name(),
		Data:  r.Event,
	})
}
