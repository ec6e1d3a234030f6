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
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/iterator"
	"github.com/FerretDB/bsonstream/internal/util/must"
)

// SlogValue returns a compact representation of any tree value as [slog.Value].
//
// The result is optimized for small values such as function parameters.
// Some type information is lost;
// for example, both int32 and int64 values are returned with [slog.KindInt64].
func SlogValue(v any) slog.Value {
	switch v := v.(type) {
	case *types.Document:
		var attrs []slog.Attr

		iter := v.Iterator()
		defer iter.Close()

		for {
			name, v, err := iter.Next()
			if err != nil {
				must.BeTrue(errors.Is(err, iterator.ErrIteratorDone))
				return slog.GroupValue(attrs...)
			}

			attrs = append(attrs, slog.Attr{Key: name, Value: SlogValue(v)})
		}

	case *types.Array:
		var attrs []slog.Attr

		iter := v.Iterator()
		defer iter.Close()

		for {
			i, v, err := iter.Next()
			if err != nil {
				must.BeTrue(errors.Is(err, iterator.ErrIteratorDone))
				return slog.GroupValue(attrs...)
			}

			attrs = append(attrs, slog.Attr{Key: strconv.Itoa(i), Value: SlogValue(v)})
		}

	case float64:
		// for JSON handler to work
		switch {
		case math.IsNaN(v):
			return slog.StringValue("NaN")
		case math.IsInf(v, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(v, -1):
			return slog.StringValue("-Inf")
		}

		return slog.Float64Value(v)

	case types.String:
		return slog.StringValue(v.V)

	case types.Binary:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case types.ObjectID:
		return slog.StringValue("ObjectID(" + hex.EncodeToString(v[:]) + ")")

	case bool:
		return slog.BoolValue(v)

	case time.Time:
		return slog.TimeValue(v.Truncate(time.Millisecond).UTC())

	case types.NullType:
		return slog.Value{}

	case types.UndefinedType:
		return slog.StringValue("Undefined")

	case types.Regex:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case int32:
		return slog.Int64Value(int64(v))

	case int64:
		return slog.Int64Value(v)

	default:
		panic(fmt.Sprintf("invalid type %T", v))
	}
}
