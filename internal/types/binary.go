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

// BinarySubtype represents BSON Binary's subtype.
type BinarySubtype byte

const (
	// BinaryGeneric represents a BSON binary generic subtype.
	BinaryGeneric = BinarySubtype(0x00)

	// BinaryFunction represents a BSON binary function subtype.
	BinaryFunction = BinarySubtype(0x01)

	// BinaryUUID represents a BSON binary uuid subtype.
	BinaryUUID = BinarySubtype(0x04)

	// BinaryMD5 represents a BSON binary md5 subtype.
	BinaryMD5 = BinarySubtype(0x05)

	// BinaryUser represents a BSON binary user-defined subtype.
	BinaryUser = BinarySubtype(0x80)
)

// Binary represents BSON type Binary: an opaque byte sequence.
type Binary struct {
	B       []byte
	Subtype BinarySubtype
}
