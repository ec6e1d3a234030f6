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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/FerretDB/bsonstream/internal/util/lazyerrors"
	"github.com/FerretDB/bsonstream/internal/writer"
)

// convert reads a stream of JSON values from r
// and writes each one as a BSON document to out.
//
// It stops between documents when ctx is canceled.
// Integer numbers become BSON 64-bit integers, other numbers become doubles.
func convert(ctx context.Context, r io.Reader, out io.Writer, m *writer.Metrics, l *zap.Logger) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return lazyerrors.Error(err)
		}

		w := writer.New(&writer.NewOpts{
			W: out,
			L: l,
			M: m,
		})

		if err = convertValue(dec, w, tok); err != nil {
			return err
		}
	}
}

// convertValue writes the JSON value that starts with tok.
func convertValue(dec *json.Decoder, w *writer.Writer, tok json.Token) error {
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			if err := w.WriteStartObject(); err != nil {
				return err
			}

			return convertObject(dec, w)

		case '[':
			if err := w.WriteStartArray(); err != nil {
				return err
			}

			return convertArray(dec, w)

		default:
			return lazyerrors.Errorf("unexpected delimiter %q", tok.String())
		}

	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return w.WriteValue(i)
		}

		f, err := tok.Float64()
		if err != nil {
			return lazyerrors.Error(err)
		}

		return w.WriteValue(f)

	case string:
		return w.WriteValue(tok)

	case bool:
		return w.WriteValue(tok)

	case nil:
		return w.WriteNull()

	default:
		return lazyerrors.Errorf("unexpected token %[1]v (%[1]T)", tok)
	}
}

// convertObject writes object members until the closing brace.
func convertObject(dec *json.Decoder, w *writer.Writer) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return lazyerrors.Error(err)
		}

		if d, ok := tok.(json.Delim); ok {
			if d == '}' {
				return w.WriteEndObject()
			}

			return lazyerrors.Errorf("unexpected delimiter %q", d.String())
		}

		name, ok := tok.(string)
		if !ok {
			return lazyerrors.Errorf("unexpected field name token %[1]v (%[1]T)", tok)
		}

		if err = w.WriteName(name); err != nil {
			return err
		}

		if tok, err = dec.Token(); err != nil {
			return lazyerrors.Error(err)
		}

		if err = convertValue(dec, w, tok); err != nil {
			return err
		}
	}
}

// convertArray writes array elements until the closing bracket.
func convertArray(dec *json.Decoder, w *writer.Writer) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return lazyerrors.Error(err)
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return w.WriteEndArray()
		}

		if err = convertValue(dec, w, tok); err != nil {
			return err
		}
	}
}
