// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

// UniformPartition - split [0, numItems) into numChunks contiguous
// chunks, the first numItems % numChunks chunks get one extra item
//
//   18, 5 → [4, 4, 4, 3, 3]
func UniformPartition(numItems int, numChunks int) [][]int {
	big := numItems % numChunks
	small := numItems / numChunks

	chunks := make([][]int, numChunks)
	next := 0
	for i := range chunks {
		size := small
		if i < big {
			size += 1
		}
		chunk := make([]int, size)
		for j := range chunk {
			chunk[j] = next + j
		}
		chunks[i] = chunk
		next += size
	}
	return chunks
}

// first original index of every chunk
func startIndices(chunks [][]int) []int {
	starts := make([]int, len(chunks))
	for i := 1; i < len(chunks); i += 1 {
		starts[i] = starts[i-1] + len(chunks[i-1])
	}
	return starts
}
