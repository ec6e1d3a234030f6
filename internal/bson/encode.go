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

package bson

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cristalhq/bson/bsonproto"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/iterator"
	"github.com/FerretDB/bsonstream/internal/util/lazyerrors"
)

// Encode encodes the document tree rooted at root and writes it to w.
//
// The root must be *types.Document or *types.Array;
// BSON has no encoding for a bare scalar document.
// It returns the number of bytes written.
// Errors returned by w are returned unchanged.
func Encode(w io.Writer, root any) (int, error) {
	var b []byte
	var err error

	switch root := root.(type) {
	case *types.Document:
		b, err = encodeDocument(root)
	case *types.Array:
		b, err = encodeArray(root)
	default:
		return 0, lazyerrors.Errorf("bson.Encode: expected *types.Document or *types.Array, got %T", root)
	}

	if err != nil {
		return 0, lazyerrors.Error(err)
	}

	return w.Write(b)
}

// encodeDocument encodes a BSON document.
func encodeDocument(doc *types.Document) ([]byte, error) {
	size := sizeDocument(doc)
	buf := bytes.NewBuffer(make([]byte, 0, size))

	if err := binary.Write(buf, binary.LittleEndian, uint32(size)); err != nil {
		return nil, lazyerrors.Error(err)
	}

	iter := doc.Iterator()
	defer iter.Close()

	for {
		name, v, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.ErrIteratorDone) {
				break
			}

			return nil, lazyerrors.Error(err)
		}

		if err = encodeField(buf, name, v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	buf.WriteByte(0)

	return buf.Bytes(), nil
}

// encodeArray encodes a BSON array.
func encodeArray(arr *types.Array) ([]byte, error) {
	size := sizeArray(arr)
	buf := bytes.NewBuffer(make([]byte, 0, size))

	if err := binary.Write(buf, binary.LittleEndian, uint32(size)); err != nil {
		return nil, lazyerrors.Error(err)
	}

	iter := arr.Iterator()
	defer iter.Close()

	for {
		i, v, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.ErrIteratorDone) {
				break
			}

			return nil, lazyerrors.Error(err)
		}

		if err = encodeField(buf, strconv.Itoa(i), v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	buf.WriteByte(0)

	return buf.Bytes(), nil
}

// encodeField encodes a document field.
//
// It panics if v is not a valid type.
func encodeField(buf *bytes.Buffer, name string, v any) error {
	switch v := v.(type) {
	case *types.Document:
		buf.WriteByte(byte(tagDocument))

		encodeCString(buf, name)

		b, err := encodeDocument(v)
		if err != nil {
			return lazyerrors.Error(err)
		}

		buf.Write(b)

	case *types.Array:
		buf.WriteByte(byte(tagArray))

		encodeCString(buf, name)

		b, err := encodeArray(v)
		if err != nil {
			return lazyerrors.Error(err)
		}

		buf.Write(b)

	default:
		return encodeScalarField(buf, name, v)
	}

	return nil
}

// encodeScalarField encodes a scalar document field.
//
// It panics if v is not a scalar value.
func encodeScalarField(buf *bytes.Buffer, name string, v any) error {
	switch v := v.(type) {
	case float64:
		buf.WriteByte(byte(tagFloat64))
	case types.String:
		if !v.IncludeLength {
			return lazyerrors.Errorf("%q: a string without the length prefix cannot be a document element", name)
		}

		buf.WriteByte(byte(tagString))
	case types.Binary:
		buf.WriteByte(byte(tagBinary))
	case types.ObjectID:
		buf.WriteByte(byte(tagObjectID))
	case bool:
		buf.WriteByte(byte(tagBool))
	case time.Time:
		buf.WriteByte(byte(tagTime))
	case types.NullType:
		buf.WriteByte(byte(tagNull))
	case types.UndefinedType:
		buf.WriteByte(byte(tagUndefined))
	case types.Regex:
		buf.WriteByte(byte(tagRegex))
	case int32:
		buf.WriteByte(byte(tagInt32))
	case int64:
		buf.WriteByte(byte(tagInt64))
	default:
		panic(fmt.Sprintf("invalid type %T", v))
	}

	encodeCString(buf, name)

	// Undefined has a tag but no payload.
	if _, ok := v.(types.UndefinedType); ok {
		return nil
	}

	s := convertScalar(v)
	b := make([]byte, bsonproto.SizeAny(s))
	bsonproto.EncodeAny(b, s)
	buf.Write(b)

	return nil
}

// encodeCString encodes a zero-terminated string.
func encodeCString(buf *bytes.Buffer, s string) {
	b := make([]byte, bsonproto.SizeCString(s))
	bsonproto.EncodeCString(b, s)
	buf.Write(b)
}
