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

// Package bsonstream provides a forward-only writer that converts a stream of
// structural write events (start-object, property-name, value, end-array, ...)
// into a BSON document written to an io.Writer.
//
// A Writer builds one document per session:
//
//	w := bsonstream.New(&bsonstream.NewOpts{W: &buf})
//	w.WriteStartObject()
//	w.WriteName("a")
//	w.WriteValue(int32(1))
//	w.WriteEndObject() // the document is encoded to buf here
//
// The document is held as an in-memory tree until the outermost container
// closes; then it is encoded and released.
package bsonstream

import (
	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/wirestate"
	"github.com/FerretDB/bsonstream/internal/writer"
)

type (
	// Writer builds one BSON document per session
	// and writes it to the destination.
	Writer = writer.Writer

	// NewOpts represents Writer configuration.
	NewOpts = writer.NewOpts

	// Metrics represents writer metrics.
	Metrics = writer.Metrics
)

type (
	// Document represents a BSON document a.k.a object.
	Document = types.Document

	// Array represents a BSON array.
	Array = types.Array

	// Binary represents BSON type Binary.
	Binary = types.Binary

	// ObjectID represents BSON type ObjectId.
	ObjectID = types.ObjectID

	// Regex represents BSON type Regex.
	Regex = types.Regex
)

type (
	// Validator checks that write events arrive in an order allowed by
	// the grammar; see the wirestate package.
	Validator = wirestate.Validator

	// StateMachine is the default Validator implementing the write grammar.
	StateMachine = wirestate.Machine

	// NopValidator accepts any event order.
	NopValidator = wirestate.Nop
)

var (
	// Null represents BSON value Null.
	Null = types.Null

	// Undefined represents BSON value Undefined.
	Undefined = types.Undefined
)

// Writer errors.
var (
	ErrInvalidRoot    = writer.ErrInvalidRoot
	ErrNoPendingName  = writer.ErrNoPendingName
	ErrNoRegexPattern = writer.ErrNoRegexPattern
	ErrRegexZeroByte  = writer.ErrRegexZeroByte
	ErrUnsupported    = writer.ErrUnsupported
)

// New creates a new Writer with the given options.
func New(opts *NewOpts) *Writer {
	return writer.New(opts)
}

// NewMetrics creates new writer metrics.
func NewMetrics() *Metrics {
	return writer.NewMetrics()
}
