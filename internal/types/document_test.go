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

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FerretDB/bsonstream/internal/util/iterator"
)

func TestDocumentSet(t *testing.T) {
	t.Parallel()

	d := MakeDocument(2)
	require.NoError(t, d.Set("a", int32(1)))
	require.NoError(t, d.Set("b", NewString("x")))
	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.Equal(t, 2, d.Len())

	// the last write wins, the field keeps its position
	require.NoError(t, d.Set("a", int64(42)))
	assert.Equal(t, []string{"a", "b"}, d.Keys())

	v, err := d.Get("a")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestDocumentSetInvalid(t *testing.T) {
	t.Parallel()

	var d Document

	err := d.Set("a", 42)
	assert.ErrorContains(t, err, "unsupported type: int")

	err = d.Set("\xff", Null)
	assert.ErrorContains(t, err, "invalid key")

	assert.Equal(t, 0, d.Len())
}

func TestDocumentGet(t *testing.T) {
	t.Parallel()

	d, err := NewDocument("a", int32(1))
	require.NoError(t, err)

	assert.True(t, d.Has("a"))
	assert.False(t, d.Has("b"))

	_, err = d.Get("b")
	assert.ErrorContains(t, err, `key not found: "b"`)
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	_, err := NewDocument("a")
	assert.ErrorContains(t, err, "invalid number of arguments")

	_, err = NewDocument(int32(1), int32(2))
	assert.ErrorContains(t, err, "invalid key type: int32")
}

func TestDocumentIterator(t *testing.T) {
	t.Parallel()

	d, err := NewDocument("a", int32(1), "b", Null)
	require.NoError(t, err)

	it := d.Iterator()
	defer it.Close()

	k, v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, int32(1), v)

	k, v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", k)
	assert.Equal(t, Null, v)

	_, _, err = it.Next()
	assert.True(t, errors.Is(err, iterator.ErrIteratorDone))

	// subsequent calls must return the same
	_, _, err = it.Next()
	assert.True(t, errors.Is(err, iterator.ErrIteratorDone))

	it.Close()

	_, _, err = it.Next()
	assert.True(t, errors.Is(err, iterator.ErrIteratorDone))
}
