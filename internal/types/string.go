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

// String represents BSON type String.
//
// IncludeLength distinguishes the normal length-prefixed encoding from the
// zero-terminated one used for the components of a regular expression.
// Values in element position must be length-prefixed.
type String struct {
	V             string
	IncludeLength bool
}

// NewString creates a length-prefixed String.
func NewString(s string) String {
	return String{V: s, IncludeLength: true}
}
