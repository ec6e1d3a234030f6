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

// Package bson implements binary encoding of the types package document tree
// as defined by https://bsonspec.org/spec.html.
//
// Only encoding is provided; parsing BSON is out of scope of this module.
package bson

import (
	"fmt"
	"time"

	"github.com/cristalhq/bson/bsonproto"

	"github.com/FerretDB/bsonstream/internal/types"
	"github.com/FerretDB/bsonstream/internal/util/must"
)

// tag represents a BSON element type tag.
type tag byte

const (
	tagFloat64   = tag(0x01)
	tagString    = tag(0x02)
	tagDocument  = tag(0x03)
	tagArray     = tag(0x04)
	tagBinary    = tag(0x05)
	tagUndefined = tag(0x06)
	tagObjectID  = tag(0x07)
	tagBool      = tag(0x08)
	tagTime      = tag(0x09)
	tagNull      = tag(0x0a)
	tagRegex     = tag(0x0b)
	tagInt32     = tag(0x10)
	tagInt64     = tag(0x12)
)

// convertScalar converts a scalar tree value to the bsonproto value
// that encodes its payload.
//
// types.String without the length prefix and types.Undefined are handled by
// the callers; invalid types cause panics.
func convertScalar(v any) any {
	switch v := v.(type) {
	case float64:
		return v
	case types.String:
		must.BeTrue(v.IncludeLength)
		return v.V
	case types.Binary:
		return bsonproto.Binary{
			B:       v.B,
			Subtype: bsonproto.BinarySubtype(v.Subtype),
		}
	case types.ObjectID:
		return bsonproto.ObjectID(v)
	case bool:
		return v
	case time.Time:
		return v
	case types.NullType:
		return bsonproto.Null
	case types.Regex:
		return bsonproto.Regex{
			Pattern: v.Pattern,
			Options: v.Options,
		}
	case int32:
		return v
	case int64:
		return v
	default:
		panic(fmt.Sprintf("invalid scalar type %T", v))
	}
}
