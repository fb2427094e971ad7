// Copyright 2025 go-highway Authors
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

// Package sort provides in-place sorting and index sorting of float32 and
// float64 slices.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-vdsp/vdsp/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data)  // In-place ascending sort
//	}
//
//	func Ranking(scores []float64) []int {
//	    return sort.ArgsortDescending(scores)
//	}
//
// NaN values compare as smaller than every number, so they collect at the
// front of an ascending sort.
package sort

import "github.com/ajroetker/go-vdsp/vdsp"

// selectInsertionThreshold: partitions this size or smaller are finished by
// a full sort in NthElement.
const selectInsertionThreshold = 64

// Sort sorts data in ascending order.
func Sort[T vdsp.Floats](data []T) {
	vdsp.Sort(data, vdsp.Ascending)
}

// SortDescending sorts data in descending order.
func SortDescending[T vdsp.Floats](data []T) {
	vdsp.Sort(data, vdsp.Descending)
}

// Argsort returns the permutation that sorts data ascending, leaving data
// untouched. Equal values keep their original relative order.
func Argsort[T vdsp.Floats](data []T) []int {
	idx := make([]int, len(data))
	vdsp.Argsort(idx, data, vdsp.Ascending)
	return idx
}

// ArgsortDescending returns the permutation that sorts data descending.
func ArgsortDescending[T vdsp.Floats](data []T) []int {
	idx := make([]int, len(data))
	vdsp.Argsort(idx, data, vdsp.Descending)
	return idx
}

// ArgsortTo writes the ascending permutation of data[:len(idx)] into idx
// without allocating.
func ArgsortTo[T vdsp.Floats](idx []int, data []T) {
	vdsp.Argsort(idx, data, vdsp.Ascending)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T vdsp.Floats](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// NthElement rearranges data such that the element at index k
// is the element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
func NthElement[T vdsp.Floats](data []T, k int) {
	n := len(data)
	if k < 0 || k >= n {
		return
	}

	// Calculate max depth
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	nthElement(data, k, maxDepth)
}

func nthElement[T vdsp.Floats](data []T, k, depthLimit int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}
		if depthLimit == 0 || n <= selectInsertionThreshold {
			Sort(data)
			return
		}
		depthLimit--

		lt, gt := partition3Way(data, medianOf3(data))
		switch {
		case k < lt:
			data = data[:lt]
		case k >= gt:
			data, k = data[gt:], k-gt
		default:
			// k is in the equal partition.
			return
		}
	}
}

// medianOf3 picks the median of the first, middle and last elements.
func medianOf3[T vdsp.Floats](data []T) T {
	a, b, c := data[0], data[len(data)/2], data[len(data)-1]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// partition3Way rearranges data into [< pivot | == pivot | > pivot] and
// returns the bounds of the middle run. NaNs land in the upper run.
func partition3Way[T vdsp.Floats](data []T, pivot T) (lt, gt int) {
	lt, i, gt := 0, 0, len(data)
	for i < gt {
		switch v := data[i]; {
		case v < pivot:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case v == pivot:
			i++
		default:
			gt--
			data[i], data[gt] = data[gt], data[i]
		}
	}
	return lt, gt
}
