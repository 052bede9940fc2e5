// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tracker

// PromotedCounts - number of promoted writers and touches
func (t *Tracker) PromotedCounts() (int, int) {
	t.RLock()
	defer t.RUnlock()
	return t.promotedWriters.Count(), t.promotedTouches.Count()
}
