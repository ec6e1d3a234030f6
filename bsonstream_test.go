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

package bsonstream_test

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FerretDB/bsonstream"
)

func Example() {
	var buf bytes.Buffer
	w := bsonstream.New(&bsonstream.NewOpts{W: &buf})

	for _, write := range []func() error{
		w.WriteStartObject,
		func() error { return w.WriteName("a") },
		func() error { return w.WriteValue(int32(1)) },
		w.WriteEndObject,
	} {
		if err := write(); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("%x\n", buf.Bytes())
	// Output: 0c0000001061000100000000
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := bsonstream.New(&bsonstream.NewOpts{W: &buf})

	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteName("ok"))
	require.NoError(t, w.WriteValue(true))
	require.NoError(t, w.WriteEndObject())

	assert.Equal(t, []byte{0x0a, 0x00, 0x00, 0x00, 0x08, 0x6f, 0x6b, 0x00, 0x01, 0x00}, buf.Bytes())
}
