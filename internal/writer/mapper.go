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
	"errors"
	"math"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/lazyerrors"
)

var (
	// ErrInt32Overflow is returned for an unsigned value that does not fit
	// in a signed 32-bit integer.
	ErrInt32Overflow = errors.New("value too large for a signed 32-bit integer: BSON has no unsigned integer type")

	// ErrInt64Overflow is returned for an unsigned value that does not fit
	// in a signed 64-bit integer.
	ErrInt64Overflow = errors.New("value too large for a signed 64-bit integer: BSON has no unsigned integer type")
)

// mapValue converts a Go value to its tree representation.
//
// The mapping is pure and stateless:
//
//	nil, types.NullType               Null
//	types.UndefinedType               Undefined
//	bool                              Boolean
//	int8, int16, int32, uint8, uint16 Int32 (widened)
//	uint32                            Int32 or ErrInt32Overflow
//	int, int64                        Int64
//	uint, uint64                      Int64 or ErrInt64Overflow
//	float32, float64                  Double
//	string                            String (length-prefixed)
//	[]byte                            Binary (generic subtype)
//	time.Time                         Date (the zone offset is not preserved)
//	uuid.UUID, time.Duration, url.URL rendered to canonical text, then String
//
// Pre-built tree values (types package values, *types.Document, *types.Array)
// pass through unchanged.
func mapValue(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return types.Null, nil
	case bool:
		return v, nil

	case int8:
		return int32(v), nil
	case int16:
		return int32(v), nil
	case int32:
		return v, nil
	case uint8:
		return int32(v), nil
	case uint16:
		return int32(v), nil

	case uint32:
		if v > math.MaxInt32 {
			return nil, ErrInt32Overflow
		}

		return int32(v), nil

	case int:
		return int64(v), nil
	case int64:
		return v, nil

	case uint64:
		if v > math.MaxInt64 {
			return nil, ErrInt64Overflow
		}

		return int64(v), nil

	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, ErrInt64Overflow
		}

		return int64(v), nil

	case float32:
		return float64(v), nil
	case float64:
		return v, nil

	case string:
		return types.NewString(v), nil

	case []byte:
		return types.Binary{B: v, Subtype: types.BinaryGeneric}, nil

	case time.Time:
		return v, nil

	case uuid.UUID:
		return types.NewString(v.String()), nil

	case time.Duration:
		return types.NewString(v.String()), nil

	case url.URL:
		return types.NewString(v.String()), nil

	case *url.URL:
		if v == nil {
			return types.Null, nil
		}

		return types.NewString(v.String()), nil

	case types.String, types.Binary, types.ObjectID, types.NullType, types.UndefinedType, types.Regex:
		return v, nil

	case *types.Document, *types.Array:
		return v, nil

	default:
		return nil, lazyerrors.Errorf("writer: unsupported value type %T", v)
	}
}
