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
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/must"
	"github.com/FerretDB/bsonstream/internal/util/testutil"
)

func TestSlogValue(t *testing.T) {
	t.Parallel()

	doc := must.NotFail(types.NewDocument(
		"a", int32(1),
		"arr", must.NotFail(types.NewArray(types.NewString("x"))),
	))

	v := SlogValue(doc)
	assert.Equal(t, slog.KindGroup, v.Kind())
	assert.Equal(t, "[a=1 arr=[0=x]]", v.String())

	// the rendering must be accepted by a real handler
	testutil.SLogger(t).Info("document", slog.Any("doc", v))

	assert.Equal(t, "NaN", SlogValue(math.NaN()).String())
	assert.Equal(t, "+Inf", SlogValue(math.Inf(1)).String())
	assert.Equal(t, "Undefined", SlogValue(types.Undefined).String())

	oid := types.ObjectID{0x62, 0x56, 0xc5, 0xba, 0x18, 0x2d, 0x44, 0x54, 0xfb, 0x21, 0x09, 0x41}
	assert.Equal(t, "ObjectID(6256c5ba182d4454fb210941)", SlogValue(oid).String())
}
