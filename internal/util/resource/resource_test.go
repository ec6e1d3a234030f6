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

package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tracked struct {
	token *Token
}

func TestTrack(t *testing.T) {
	t.Parallel()

	o := &tracked{token: NewToken()}
	Track(o, o.token)

	Untrack(o, o.token)

	// untracking the same object again is allowed
	Untrack(o, o.token)
}

func TestTrackInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		Track(nil, NewToken())
	})

	require.Panics(t, func() {
		Track(&tracked{}, nil)
	})
}
