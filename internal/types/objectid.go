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

import "fmt"

// ObjectIDLen is the length of ObjectID in bytes.
const ObjectIDLen = 12

// ObjectID represents BSON type ObjectId.
type ObjectID [ObjectIDLen]byte

// NewObjectID creates an ObjectID from the given byte sequence.
//
// The sequence must be exactly 12 bytes long.
func NewObjectID(b []byte) (ObjectID, error) {
	var id ObjectID

	if len(b) != ObjectIDLen {
		return id, fmt.Errorf("types.NewObjectID: an object id must be %d bytes, got %d", ObjectIDLen, len(b))
	}

	copy(id[:], b)

	return id, nil
}
