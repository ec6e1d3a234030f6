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
	"errors"
	"strconv"

	"github.com/cristalhq/bson/bsonproto"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/iterator"
	"github.com/FerretDB/bsonstream/internal/util/must"
)

// Size returns a size of the encoding of value v in bytes.
//
// It panics for invalid types.
func Size(v any) int {
	return sizeAny(v)
}

// sizeAny returns a size of the encoding of value v in bytes.
//
// It panics for invalid types.
func sizeAny(v any) int {
	switch v := v.(type) {
	case *types.Document:
		return sizeDocument(v)
	case *types.Array:
		return sizeArray(v)
	case types.String:
		if !v.IncludeLength {
			return len(v.V) + 1
		}

		return bsonproto.SizeAny(v.V)
	case types.UndefinedType:
		return 0
	default:
		return bsonproto.SizeAny(convertScalar(v))
	}
}

// sizeDocument returns a size of the encoding of Document doc in bytes.
func sizeDocument(doc *types.Document) int {
	size := 5

	iter := doc.Iterator()
	defer iter.Close()

	for {
		name, v, err := iter.Next()
		if err != nil {
			must.BeTrue(errors.Is(err, iterator.ErrIteratorDone))
			return size
		}

		size += 1 + len(name) + 1 + sizeAny(v)
	}
}

// sizeArray returns a size of the encoding of Array arr in bytes.
func sizeArray(arr *types.Array) int {
	size := 5

	iter := arr.Iterator()
	defer iter.Close()

	for {
		i, v, err := iter.Next()
		if err != nil {
			must.BeTrue(errors.Is(err, iterator.ErrIteratorDone))
			return size
		}

		size += 1 + len(strconv.Itoa(i)) + 1 + sizeAny(v)
	}
}
