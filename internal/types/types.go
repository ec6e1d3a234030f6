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

// Package types provides the in-memory document tree built by the writer
// and consumed by the bson encoder.
//
// The following values can be stored in the tree:
//
// Composite types (passed by pointers)
//
//	*types.Document  BSON document / object
//	*types.Array     BSON array
//
// Scalar types (passed by values)
//
//	float64              64-bit binary floating point
//	types.String         UTF-8 string
//	types.Binary         binary data
//	types.ObjectID       ObjectId
//	bool                 boolean
//	time.Time            UTC datetime
//	types.NullType       null
//	types.UndefinedType  undefined (distinct from null)
//	types.Regex          regular expression
//	int32                32-bit integer
//	int64                64-bit integer
//
// The tree is append-only: values are attached to their container once and
// are not mutated afterwards.
package types

import (
	"fmt"
	"time"
)

// ScalarType represents a scalar tree value.
type ScalarType interface {
	float64 | String | Binary | ObjectID | bool | time.Time | NullType | UndefinedType | Regex | int32 | int64
}

// CompositeType represents a composite tree value - *Document or *Array.
type CompositeType interface {
	*Document | *Array
}

// Type represents any tree value (scalar or composite).
type Type interface {
	ScalarType | CompositeType
}

type (
	// NullType represents BSON type Null.
	//
	// Most callers should use types.Null value instead.
	NullType struct{}

	// UndefinedType represents BSON type Undefined.
	//
	// It is distinct from Null.
	// Most callers should use types.Undefined value instead.
	UndefinedType struct{}
)

var (
	// Null represents BSON value Null.
	Null = NullType{}

	// Undefined represents BSON value Undefined.
	Undefined = UndefinedType{}
)

// validateValue checks that the value can be stored in the tree.
func validateValue(value any) error {
	switch value.(type) {
	case *Document:
		return nil
	case *Array:
		return nil
	case float64:
		return nil
	case String:
		return nil
	case Binary:
		return nil
	case ObjectID:
		return nil
	case bool:
		return nil
	case time.Time:
		return nil
	case NullType:
		return nil
	case UndefinedType:
		return nil
	case Regex:
		return nil
	case int32:
		return nil
	case int64:
		return nil
	default:
		return fmt.Errorf("types.validateValue: unsupported type: %[1]T (%[1]v)", value)
	}
}
