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

package matrix

import "github.com/ajroetker/go-vdsp/vdsp"

// SwapMajor exchanges two groups of count rows that start at rows a and b
// of buf, viewed with rows of minor scalars. The order of a and b does not
// matter; call the smaller one lower and the other upper.
//
// When the groups are further apart than count rows, the rows
// [lower, lower+c) and [upper, upper+c) are swapped, where c is count cut
// down to the rows that exist past upper. Swapping twice restores buf.
//
// When count is larger than the gap between the groups, the rows from lower
// to the end of the matrix are rotated so the first count of them move to
// the end:
//
//	rows 0 1 2 3 4 5, a=0, b=3, count=2  ->  2 3 4 5 0 1
//
// Rows move as whole units and no extra memory is used. It returns false
// without touching buf if a == b, minor <= 0, count <= 0 or upper is not a
// valid row.
func SwapMajor[T vdsp.Floats](buf vdsp.MutableBuffer[T], a, b, minor, count int) bool {
	if buf == nil || a == b || minor <= 0 || count <= 0 || a < 0 || b < 0 {
		return false
	}
	rows := vdsp.VectorCount[T](buf) / minor
	lower, upper := min(a, b), max(a, b)
	if upper >= rows {
		return false
	}
	s := buf.MutableScalars()[:rows*minor]
	count = min(count, rows-lower)

	gap := upper - (lower + count)
	if count > gap {
		rotateRows(s, lower, lower+count, rows, minor)
		return true
	}
	c := min(count, rows-upper)
	for i := range c {
		swapRows(s, lower+i, upper+i, minor)
	}
	return true
}

// rotateRows rotates rows [lo, hi) so that row mid becomes row lo, by
// reversing both halves and then the whole range. mid is capped at hi.
func rotateRows[T vdsp.Floats](s []T, lo, mid, hi, minor int) {
	mid = min(mid, hi)
	reverseRows(s, lo, mid, minor)
	reverseRows(s, mid, hi, minor)
	reverseRows(s, lo, hi, minor)
}

func reverseRows[T vdsp.Floats](s []T, lo, hi, minor int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		swapRows(s, i, j, minor)
	}
}

func swapRows[T vdsp.Floats](s []T, i, j, minor int) {
	ri := s[i*minor : (i+1)*minor]
	rj := s[j*minor : (j+1)*minor]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
