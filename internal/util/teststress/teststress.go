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

// Package teststress runs stress tests with maximum concurrency.
package teststress

import (
	"runtime"
	"sync"
	"testing"
)

// Stress runs function f in multiple goroutines started at the same time.
//
// Function f should do the needed setup, send a message to the ready channel,
// wait for the start channel to be closed, and then do the actual work.
// Stress returns the number of goroutines started.
func Stress(tb testing.TB, f func(ready chan<- struct{}, start <-chan struct{})) int {
	tb.Helper()

	n := runtime.GOMAXPROCS(-1) * 10

	var wg sync.WaitGroup
	ready := make(chan struct{}, n)
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			f(ready, start)
		}()
	}

	// wait for all goroutines to be ready before starting them at once
	for i := 0; i < n; i++ {
		<-ready
	}

	close(start)

	wg.Wait()

	return n
}
