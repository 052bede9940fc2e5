// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// None - value of a Minimum that has not been lowered
const None = ^uint64(0)

// Minimum - a value that can only be lowered, concurrently
//
// the zero value is a valid minimum of zero, use NewMinimums to
// start from None
type Minimum uint64

// NewMinimums - a slice of n minimums all set to None
func NewMinimums(n int) []Minimum {
	m := make([]Minimum, n)
	for i := range m {
		m[i] = Minimum(None)
	}
	return m
}

// Lower - set to value if value is smaller than the current value,
// returns true if the value was changed
func (m *Minimum) Lower(value uint64) bool {
	for {
		current := atomic.LoadUint64((*uint64)(m))
		if value >= current {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(m), current, value) {
			return true
		}
	}
}

// Uint64 - returns current value
func (m *Minimum) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(m))
}
