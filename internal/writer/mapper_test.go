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

package writer

import (
	"net/url"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FerretDB/bsonstream/internal/types"
)

func TestMapValue(t *testing.T) {
	t.Parallel()

	u := url.URL{Scheme: "https", Host: "example.com", Path: "/"}

	for name, tc := range map[string]struct {
		v        any
		expected any
	}{
		"Nil":      {nil, types.Null},
		"Bool":     {true, true},
		"Int8":     {int8(-1), int32(-1)},
		"Int16":    {int16(-2), int32(-2)},
		"Uint8":    {uint8(255), int32(255)},
		"Uint16":   {uint16(65535), int32(65535)},
		"Int":      {42, int64(42)},
		"Float32":  {float32(0.5), 0.5},
		"String":   {"foo", types.NewString("foo")},
		"Bytes":    {[]byte{0x42}, types.Binary{B: []byte{0x42}, Subtype: types.BinaryGeneric}},
		"UUID":     {uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), types.NewString("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		"Duration": {90 * time.Minute, types.NewString("1h30m0s")},
		"URL":      {u, types.NewString("https://example.com/")},
		"URLPtr":   {pointer.To(u), types.NewString("https://example.com/")},
		"NilURL":   {(*url.URL)(nil), types.Null},
		"Regex":    {types.Regex{Pattern: "^foo", Options: "i"}, types.Regex{Pattern: "^foo", Options: "i"}},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			actual, err := mapValue(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestMapValueUnsupported(t *testing.T) {
	t.Parallel()

	_, err := mapValue(struct{}{})
	assert.ErrorContains(t, err, "unsupported value type")

	_, err = mapValue(map[string]any{"a": 1})
	assert.ErrorContains(t, err, "unsupported value type")
}
