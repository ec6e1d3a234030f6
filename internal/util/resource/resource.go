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

// Package resource tracks objects that must be closed explicitly,
// such as iterators.
//
// Tracked objects that become garbage without being untracked first
// make the process panic.
// Currently tracked objects are exposed as pprof profiles
// named "bsonstream/<type>".
package resource

import (
	"fmt"
	"reflect"
	"runtime"
	"runtime/pprof"
	"sync"

	"github.com/FerretDB/bsonstream/internal/util/debugbuild"
)

// Token is a unique value held by a tracked object.
type Token struct {
	stack []byte
}

// NewToken returns a new Token.
//
// The stack trace of the caller is captured in debug builds.
func NewToken() *Token {
	return &Token{
		stack: debugbuild.Stack(),
	}
}

// profilesM protects the profile creation below.
var profilesM sync.Mutex

// profileName returns the pprof profile name for the given object.
func profileName(obj any) string {
	return "bsonstream/" + reflect.TypeOf(obj).Elem().String()
}

// Track starts tracking the lifetime of obj until Untrack is called.
//
// Obj must be a pointer; token must be stored in the object itself.
func Track(obj any, token *Token) {
	if obj == nil {
		panic("obj must not be nil")
	}

	if token == nil {
		panic("token must not be nil")
	}

	name := profileName(obj)

	p := pprof.Lookup(name)
	if p == nil {
		profilesM.Lock()

		// a concurrent call might have created the profile already; check again
		if p = pprof.Lookup(name); p == nil {
			p = pprof.NewProfile(name)
		}

		profilesM.Unlock()
	}

	// use token instead of obj itself,
	// because otherwise the profile would hold a reference to obj
	// and the finalizer would never run
	p.Add(token, 1)

	runtime.SetFinalizer(obj, func(obj any) {
		msg := fmt.Sprintf("%T has not been finalized", obj)
		if token.stack != nil {
			msg += "\nObject created by " + string(token.stack)
		}

		panic(msg)
	})
}

// Untrack stops tracking the lifetime of obj.
//
// It is safe to call it multiple times for the same object.
func Untrack(obj any, token *Token) {
	p := pprof.Lookup(profileName(obj))
	if p == nil {
		panic("object is not tracked")
	}

	p.Remove(token)

	runtime.SetFinalizer(obj, nil)
}
