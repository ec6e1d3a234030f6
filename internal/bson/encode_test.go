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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	driverbson "go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/must"
	"github.com/FerretDB/bsonstream/internal/util/testutil"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	doc := must.NotFail(types.NewDocument("a", int32(1)))

	var buf bytes.Buffer
	n, err := Encode(&buf, doc)
	require.NoError(t, err)

	expected := testutil.ParseDump(t, `
		00000000  0c 00 00 00 10 61 00 01  00 00 00 00              |.....a......|
	`)
	assert.Equal(t, expected, buf.Bytes(), "actual:\n%s", testutil.Dump(t, buf.Bytes()))
	assert.Equal(t, len(expected), n)
	assert.Equal(t, len(expected), Size(doc))
}

// TestEncodeDriver checks that every tree value encodes to the same bytes
// as the official driver produces.
func TestEncodeDriver(t *testing.T) {
	t.Parallel()

	dt := time.Date(2021, 7, 27, 9, 35, 42, 123000000, time.UTC)
	oid := types.ObjectID{0x62, 0x56, 0xc5, 0xba, 0x18, 0x2d, 0x44, 0x54, 0xfb, 0x21, 0x09, 0x41}

	doc := must.NotFail(types.NewDocument(
		"double", 42.13,
		"string", types.NewString("foo"),
		"doc", must.NotFail(types.NewDocument("a", int32(1))),
		"arr", must.NotFail(types.NewArray(types.NewString("x"), types.Null)),
		"binary", types.Binary{B: []byte{0x42, 0x0d, 0xea, 0xd0}, Subtype: types.BinaryGeneric},
		"undefined", types.Undefined,
		"objectid", oid,
		"bool", true,
		"datetime", dt,
		"null", types.Null,
		"regex", types.Regex{Pattern: "^foo", Options: "i"},
		"int32", int32(42),
		"int64", int64(42),
	))

	var buf bytes.Buffer
	n, err := Encode(&buf, doc)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	assert.Equal(t, Size(doc), n)

	expected := must.NotFail(driverbson.Marshal(driverbson.D{
		{Key: "double", Value: 42.13},
		{Key: "string", Value: "foo"},
		{Key: "doc", Value: driverbson.D{{Key: "a", Value: int32(1)}}},
		{Key: "arr", Value: driverbson.A{"x", nil}},
		{Key: "binary", Value: primitive.Binary{Subtype: 0x00, Data: []byte{0x42, 0x0d, 0xea, 0xd0}}},
		{Key: "undefined", Value: primitive.Undefined{}},
		{Key: "objectid", Value: primitive.ObjectID(oid)},
		{Key: "bool", Value: true},
		{Key: "datetime", Value: primitive.NewDateTimeFromTime(dt)},
		{Key: "null", Value: nil},
		{Key: "regex", Value: primitive.Regex{Pattern: "^foo", Options: "i"}},
		{Key: "int32", Value: int32(42)},
		{Key: "int64", Value: int64(42)},
	}))
	assert.Equal(t, expected, buf.Bytes(), "actual:\n%s", testutil.Dump(t, buf.Bytes()))

	require.NoError(t, driverbson.Raw(buf.Bytes()).Validate())
}

func TestEncodeArray(t *testing.T) {
	t.Parallel()

	arr := must.NotFail(types.NewArray(int32(1), types.NewString("x")))

	var buf bytes.Buffer
	n, err := Encode(&buf, arr)
	require.NoError(t, err)
	assert.Equal(t, Size(arr), n)

	// a top-level array is laid out as a document with index keys
	expected := must.NotFail(driverbson.Marshal(driverbson.D{
		{Key: "0", Value: int32(1)},
		{Key: "1", Value: "x"},
	}))
	assert.Equal(t, expected, buf.Bytes(), "actual:\n%s", testutil.Dump(t, buf.Bytes()))
}

func TestEncodeInvalidRoot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := Encode(&buf, int32(1))
	assert.ErrorContains(t, err, "expected *types.Document or *types.Array")
	assert.Zero(t, buf.Len())
}

func TestEncodeCString(t *testing.T) {
	t.Parallel()

	// zero-terminated strings appear only inside regular expressions;
	// in element position they must be rejected
	doc := types.MakeDocument(1)
	require.NoError(t, doc.Set("s", types.String{V: "x"}))

	var buf bytes.Buffer
	_, err := Encode(&buf, doc)
	assert.ErrorContains(t, err, "a string without the length prefix cannot be a document element")

	assert.Equal(t, 2, Size(types.String{V: "x"}))
	assert.Equal(t, 6, Size(types.NewString("x")))
}
