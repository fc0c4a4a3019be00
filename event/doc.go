// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications produced by the registries
//
// An operation sends its events to a Sink.  The host gives each
// request its own Buffer and forwards the buffered events to the
// broadcast Queue only once the request's transaction has committed,
// so a failed request never produces an observable event.
package event
