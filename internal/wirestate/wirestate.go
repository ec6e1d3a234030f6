// Copyright 2021 FerretDB Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wirestate validates the order of document write events.
//
// What may come next depends on whether the writer is at the top level,
// inside an object before a field name, inside an object after a field name,
// or inside an array.
// The rules are the JSON grammar rules; they are not specific to BSON.
package wirestate

import "fmt"

// Event represents a single write event.
type Event int

// Write events.
const (
	_ Event = iota
	EventStartObject
	EventEndObject
	EventStartArray
	EventEndArray
	EventName
	EventValue
)

// String implements fmt.Stringer interface.
func (e Event) String() string {
	switch e {
	case EventStartObject:
		return "start-object"
	case EventEndObject:
		return "end-object"
	case EventStartArray:
		return "start-array"
	case EventEndArray:
		return "end-array"
	case EventName:
		return "property-name"
	case EventValue:
		return "value"
	default:
		return fmt.Sprintf("unknown event %d", int(e))
	}
}

// Validator checks that write events arrive in an order allowed by the grammar.
//
// Advance must be called exactly once per event,
// including for values that bypass the normal value entry point
// (object ids and regular expressions).
type Validator interface {
	Advance(ev Event) error
}

// Nop is a Validator that accepts any event order.
//
// It is meant for callers that guarantee correct ordering themselves.
type Nop struct{}

// Advance implements Validator interface.
func (Nop) Advance(Event) error { return nil }

// check interfaces
var (
	_ Validator    = Nop{}
	_ fmt.Stringer = EventValue
)
