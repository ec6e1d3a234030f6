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

func TestArray(t *testing.T) {
	t.Parallel()

	var a Array
	assert.Equal(t, 0, a.Len())

	require.NoError(t, a.Append(int32(1), NewString("x")))
	require.NoError(t, a.Append(Null))
	assert.Equal(t, 3, a.Len())

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, NewString("x"), v)

	_, err = a.Get(3)
	assert.ErrorContains(t, err, "index 3 is out of bounds [0-3)")

	_, err = a.Get(-1)
	assert.ErrorContains(t, err, "out of bounds")

	err = a.Append(struct{}{})
	assert.ErrorContains(t, err, "unsupported type")
	assert.Equal(t, 3, a.Len())
}

func TestNewArray(t *testing.T) {
	t.Parallel()

	_, err := NewArray(int32(1), "x")
	assert.ErrorContains(t, err, "index 1: types.validateValue: unsupported type: string")
}

func TestArrayIterator(t *testing.T) {
	t.Parallel()

	a, err := NewArray(int32(1), Null)
	require.NoError(t, err)

	it := a.Iterator()
	defer it.Close()

	i, v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, int32(1), v)

	i, v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, Null, v)

	_, _, err = it.Next()
	assert.True(t, errors.Is(err, iterator.ErrIteratorDone))
}
