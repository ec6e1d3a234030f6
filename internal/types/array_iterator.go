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

import (
	"sync"

	"github.com/FerretDB/bsonstream/internal/util/iterator"
	"github.com/FerretDB/bsonstream/internal/util/resource"
)

// arrayIterator iterates over the array values in order.
type arrayIterator struct {
	arr   *Array
	n     int
	once  sync.Once
	token *resource.Token
}

// Iterator returns an iterator over the array values in order.
//
// Close must be called to release the iterator.
func (a *Array) Iterator() iterator.Interface[int, any] {
	it := &arrayIterator{
		arr:   a,
		token: resource.NewToken(),
	}
	resource.Track(it, it.token)

	return it
}

// Next implements iterator.Interface.
func (it *arrayIterator) Next() (int, any, error) {
	if it.arr == nil || it.n >= it.arr.Len() {
		return 0, nil, iterator.ErrIteratorDone
	}

	i := it.n
	it.n++

	return i, it.arr.s[i], nil
}

// Close implements iterator.Interface.
func (it *arrayIterator) Close() {
	it.once.Do(func() {
		it.arr = nil

		resource.Untrack(it, it.token)
	})
}

// check interfaces
var (
	_ iterator.Interface[int, any] = (*arrayIterator)(nil)
)
