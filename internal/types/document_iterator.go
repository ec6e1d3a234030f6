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

// documentIterator iterates over the document fields in order.
type documentIterator struct {
	doc   *Document
	n     int
	once  sync.Once
	token *resource.Token
}

// Iterator returns an iterator over the document fields in order.
//
// Close must be called to release the iterator.
func (d *Document) Iterator() iterator.Interface[string, any] {
	it := &documentIterator{
		doc:   d,
		token: resource.NewToken(),
	}
	resource.Track(it, it.token)

	return it
}

// Next implements iterator.Interface.
func (it *documentIterator) Next() (string, any, error) {
	if it.doc == nil || it.n >= it.doc.Len() {
		return "", nil, iterator.ErrIteratorDone
	}

	key := it.doc.keys[it.n]
	it.n++

	return key, it.doc.m[key], nil
}

// Close implements iterator.Interface.
func (it *documentIterator) Close() {
	it.once.Do(func() {
		it.doc = nil

		resource.Untrack(it, it.token)
	})
}

// check interfaces
var (
	_ iterator.Interface[string, any] = (*documentIterator)(nil)
)
