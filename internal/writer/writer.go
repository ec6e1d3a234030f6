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

// Package writer folds a stream of structural write events into a document
// tree and encodes the tree to the destination when the outermost container
// closes.
package writer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/FerretDB/bsonstream/internal/bson"
	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/wirestate"
)

var (
	// ErrInvalidRoot is returned for a scalar value written with no open container.
	ErrInvalidRoot = errors.New("a document must start with an object or array")

	// ErrNoPendingName is returned for a value written under an object
	// with no field name pending.
	ErrNoPendingName = errors.New("no field name is pending")

	// ErrNoRegexPattern is returned for a regular expression without a pattern.
	ErrNoRegexPattern = errors.New("a regular expression must have a pattern")

	// ErrRegexZeroByte is returned for a regular expression containing a zero byte.
	ErrRegexZeroByte = errors.New("a regular expression must not contain a zero byte")

	// ErrUnsupported is returned for constructs that have no BSON representation.
	ErrUnsupported = errors.New("no BSON representation")
)

// Writer builds one BSON document per session and writes it to the destination.
//
// All failures are terminal for the in-progress document.
// Writer is not safe for concurrent use;
// use one instance per logical writer session.
type Writer struct {
	w     io.Writer
	state wirestate.Validator
	l     *zap.Logger
	m     *Metrics

	stack   []any // open containers, *types.Document or *types.Array
	root    any
	name    string
	hasName bool
}

// NewOpts represents Writer configuration.
type NewOpts struct {
	W io.Writer

	// State validates the order of write events.
	// If nil, a new wirestate.Machine is used.
	State wirestate.Validator

	// If nil, a no-op logger is used.
	L *zap.Logger

	// Optional metrics, shared between writers.
	M *Metrics
}

// New creates a new Writer with the given options.
func New(opts *NewOpts) *Writer {
	state := opts.State
	if state == nil {
		state = new(wirestate.Machine)
	}

	l := opts.L
	if l == nil {
		l = zap.NewNop()
	}

	return &Writer{
		w:     opts.W,
		state: state,
		l:     l,
		m:     opts.M,
	}
}

// Depth returns the number of open containers.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// WriteStartObject starts a new object.
func (w *Writer) WriteStartObject() error {
	if err := w.state.Advance(wirestate.EventStartObject); err != nil {
		return err
	}

	return w.openContainer(types.MakeDocument(0))
}

// WriteEndObject closes the current object.
//
// Closing the outermost container encodes the document to the destination;
// encoder and I/O failures are returned unchanged.
func (w *Writer) WriteEndObject() error {
	if err := w.state.Advance(wirestate.EventEndObject); err != nil {
		return err
	}

	return w.closeContainer(wirestate.EventEndObject)
}

// WriteStartArray starts a new array.
func (w *Writer) WriteStartArray() error {
	if err := w.state.Advance(wirestate.EventStartArray); err != nil {
		return err
	}

	return w.openContainer(types.MakeArray(0))
}

// WriteEndArray closes the current array.
//
// See WriteEndObject for the outermost container behavior.
func (w *Writer) WriteEndArray() error {
	if err := w.state.Advance(wirestate.EventEndArray); err != nil {
		return err
	}

	return w.closeContainer(wirestate.EventEndArray)
}

// WriteName records the field name to be consumed by the next value.
//
// An unconsumed name is overwritten;
// the default grammar validator rejects such sequences before that.
func (w *Writer) WriteName(name string) error {
	if err := w.state.Advance(wirestate.EventName); err != nil {
		return err
	}

	w.name = name
	w.hasName = true

	return nil
}

// WriteValue maps v to its tree representation and appends it under the
// current container.
//
// See mapValue for the supported Go types and the numeric width rules.
func (w *Writer) WriteValue(v any) error {
	if err := w.state.Advance(wirestate.EventValue); err != nil {
		return err
	}

	mapped, err := mapValue(v)
	if err != nil {
		return err
	}

	return w.append(mapped)
}

// WriteNull appends a null value.
func (w *Writer) WriteNull() error {
	return w.WriteValue(types.Null)
}

// WriteUndefined appends an undefined value.
//
// Undefined is distinct from null.
func (w *Writer) WriteUndefined() error {
	return w.WriteValue(types.Undefined)
}

// WriteObjectID appends an object id.
//
// The id must be exactly 12 bytes long.
// Object ids have no generic value event,
// so the grammar validator is advanced with a value event explicitly.
func (w *Writer) WriteObjectID(b []byte) error {
	id, err := types.NewObjectID(b)
	if err != nil {
		return err
	}

	if err := w.state.Advance(wirestate.EventValue); err != nil {
		return err
	}

	return w.append(id)
}

// WriteRegex appends a regular expression with the given options.
//
// The pattern is required; the options string may be empty.
// Both components are encoded as zero-terminated strings,
// so neither may contain a zero byte.
// See WriteObjectID for the grammar validator handling.
func (w *Writer) WriteRegex(pattern, options string) error {
	if pattern == "" {
		return ErrNoRegexPattern
	}

	if strings.ContainsRune(pattern, 0) || strings.ContainsRune(options, 0) {
		return ErrRegexZeroByte
	}

	if err := w.state.Advance(wirestate.EventValue); err != nil {
		return err
	}

	return w.append(types.Regex{Pattern: pattern, Options: options})
}

// WriteComment always fails: BSON has no comments.
func (w *Writer) WriteComment(string) error {
	return fmt.Errorf("cannot write a comment: %w", ErrUnsupported)
}

// WriteRaw always fails: pre-formatted fragments cannot be placed in the tree.
func (w *Writer) WriteRaw(string) error {
	return fmt.Errorf("cannot write raw value: %w", ErrUnsupported)
}

// WriteStartConstructor always fails: BSON has no constructors.
func (w *Writer) WriteStartConstructor(string) error {
	return fmt.Errorf("cannot write a constructor: %w", ErrUnsupported)
}

// openContainer attaches c under the current container and makes it current.
func (w *Writer) openContainer(c any) error {
	if err := w.append(c); err != nil {
		return err
	}

	w.stack = append(w.stack, c)

	return nil
}

// closeContainer pops the current container.
//
// Popping the last container finalizes the document.
// A close with no open container, or a close not matching the current
// container kind, is a defect of the upstream grammar validation and panics.
func (w *Writer) closeContainer(ev wirestate.Event) error {
	if len(w.stack) == 0 {
		panic("writer: close with no open container")
	}

	switch w.stack[len(w.stack)-1].(type) {
	case *types.Document:
		if ev != wirestate.EventEndObject {
			panic(fmt.Sprintf("writer: %s closes an object", ev))
		}
	case *types.Array:
		if ev != wirestate.EventEndArray {
			panic(fmt.Sprintf("writer: %s closes an array", ev))
		}
	}

	w.stack = w.stack[:len(w.stack)-1]

	if len(w.stack) > 0 {
		return nil
	}

	return w.finish()
}

// append attaches v under the current container,
// consuming the pending field name.
//
// With no open container, v becomes the root;
// only an object or array is a valid root.
// Attaching a pre-built container does not make it current:
// openContainer is the only way to change the current container.
func (w *Writer) append(v any) error {
	if len(w.stack) == 0 {
		switch v.(type) {
		case *types.Document, *types.Array:
			w.root = v
			return nil
		default:
			return ErrInvalidRoot
		}
	}

	switch c := w.stack[len(w.stack)-1].(type) {
	case *types.Document:
		if !w.hasName {
			return ErrNoPendingName
		}

		name := w.name
		w.name, w.hasName = "", false

		if err := c.Set(name, v); err != nil {
			return err
		}

	case *types.Array:
		if err := c.Append(v); err != nil {
			return err
		}

	default:
		panic(fmt.Sprintf("invalid container type %T", c))
	}

	return nil
}

// finish encodes the completed tree and releases it.
//
// The encoder is invoked exactly once per document.
func (w *Writer) finish() error {
	root := w.root
	w.root = nil

	n, err := bson.Encode(w.w, root)
	if err != nil {
		return err
	}

	w.l.Debug("Document encoded", zap.Int("bytes", n))

	if w.m != nil {
		w.m.documents.Inc()
		w.m.bytes.Add(float64(n))
	}

	return nil
}
