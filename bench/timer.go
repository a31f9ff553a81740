// Copyright 2025 go-sortbench Authors
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

package bench

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer measures how long a function takes.
type Timer struct {
	clock clock.Clock
}

// NewTimer returns a Timer reading c, or the wall clock when c is nil.
func NewTimer(c clock.Clock) *Timer {
	if c == nil {
		c = clock.New()
	}
	return &Timer{clock: c}
}

// Time calls fn and returns the elapsed time along with fn's error.
func (t *Timer) Time(fn func() error) (time.Duration, error) {
	start := t.clock.Now()
	err := fn()
	return t.clock.Now().Sub(start), err
}
