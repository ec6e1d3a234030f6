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

package wirestate

import "github.com/FerretDB/bsonstream/internal/util/lazyerrors"

// mode represents a grammar state of one open container.
type mode int

const (
	// inside an object; a field name or end-object comes next
	modeObjectName mode = iota

	// inside an object after a field name; a value comes next
	modeObjectValue

	// inside an array; a value or end-array comes next
	modeArray
)

// Machine is a Validator implementing the write grammar.
//
// The zero value is ready to validate one document;
// call Reset to reuse it for the next one.
// It is not safe for concurrent use.
type Machine struct {
	stack []mode
	done  bool
}

// Advance implements Validator interface.
func (m *Machine) Advance(ev Event) error {
	if m.done {
		return lazyerrors.Errorf("wirestate: unexpected %s after the document is complete", ev)
	}

	switch ev {
	case EventStartObject:
		if err := m.advanceValue(ev); err != nil {
			return err
		}

		m.stack = append(m.stack, modeObjectName)

		return nil

	case EventStartArray:
		if err := m.advanceValue(ev); err != nil {
			return err
		}

		m.stack = append(m.stack, modeArray)

		return nil

	case EventEndObject:
		if len(m.stack) == 0 || m.stack[len(m.stack)-1] != modeObjectName {
			return lazyerrors.Errorf("wirestate: unexpected %s", ev)
		}

		m.pop()

		return nil

	case EventEndArray:
		if len(m.stack) == 0 || m.stack[len(m.stack)-1] != modeArray {
			return lazyerrors.Errorf("wirestate: unexpected %s", ev)
		}

		m.pop()

		return nil

	case EventName:
		if len(m.stack) == 0 || m.stack[len(m.stack)-1] != modeObjectName {
			return lazyerrors.Errorf("wirestate: unexpected %s", ev)
		}

		m.stack[len(m.stack)-1] = modeObjectValue

		return nil

	case EventValue:
		return m.advanceValue(ev)

	default:
		return lazyerrors.Errorf("wirestate: %s", ev)
	}
}

// Depth returns the number of open containers.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Reset makes the Machine ready to validate the next document.
func (m *Machine) Reset() {
	m.stack = m.stack[:0]
	m.done = false
}

// advanceValue checks that a value-shaped event is legal in the current state
// and consumes the pending field name, if any.
//
// A top-level scalar completes the document:
// the grammar itself allows it, rejecting it is the tree builder's job.
func (m *Machine) advanceValue(ev Event) error {
	if len(m.stack) == 0 {
		if ev == EventValue {
			m.done = true
		}

		return nil
	}

	switch m.stack[len(m.stack)-1] {
	case modeObjectValue:
		m.stack[len(m.stack)-1] = modeObjectName
		return nil
	case modeArray:
		return nil
	case modeObjectName:
		fallthrough
	default:
		return lazyerrors.Errorf("wirestate: unexpected %s, a field name is expected", ev)
	}
}

// pop closes the current container.
func (m *Machine) pop() {
	m.stack = m.stack[:len(m.stack)-1]

	if len(m.stack) == 0 {
		m.done = true
	}
}

// check interfaces
var (
	_ Validator = (*Machine)(nil)
)
