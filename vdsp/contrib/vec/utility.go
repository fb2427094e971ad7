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

package vec

import (
	"math"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// Fill sets all elements in dst to the specified value.
func Fill[T vdsp.Floats](dst []T, value T) {
	vdsp.Fill(dst, value)
}

// Zero sets every element of dst to zero.
func Zero[T vdsp.Floats](dst []T) {
	clear(dst)
}

// Ramp writes dst[i] = start + i*step.
func Ramp[T vdsp.Floats](dst []T, start, step T) {
	vdsp.Ramp(dst, start, step)
}

// Clip writes s[i] limited to [lo, hi]. An empty range (lo > hi) leaves dst
// unchanged.
func Clip[T vdsp.Floats](dst, s []T, lo, hi T) {
	vdsp.Clip(dst, s, lo, hi)
}

// Threshold replaces values below minimum with minimum.
func Threshold[T vdsp.Floats](dst, s []T, minimum T) {
	vdsp.Scalar(vdsp.OpMaxScalar, dst, s, minimum)
}

// Limit replaces values above maximum with maximum.
func Limit[T vdsp.Floats](dst, s []T, maximum T) {
	vdsp.Scalar(vdsp.OpMinScalar, dst, s, maximum)
}

// Lerp writes a[i] + t*(b[i]-a[i]); t = 0 gives a and t = 1 gives b.
func Lerp[T vdsp.Floats](dst, a, b []T, t T) {
	vdsp.Lerp(dst, a, b, t)
}

// Reverse reverses dst in place.
func Reverse[T vdsp.Floats](dst []T) {
	for i, j := 0, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
}

// Gather writes dst[i] = src[idx[i]]. Indices outside src leave dst[i]
// unchanged. It returns the number of elements considered,
// min(len(dst), len(idx)).
func Gather[T vdsp.Floats](dst, src []T, idx []int) int {
	n := min(len(dst), len(idx))
	for i, j := range idx[:n] {
		if j >= 0 && j < len(src) {
			dst[i] = src[j]
		}
	}
	return n
}

// Scatter writes dst[idx[i]] = src[i]. Indices outside dst are skipped.
func Scatter[T vdsp.Floats](dst, src []T, idx []int) {
	n := min(len(src), len(idx))
	for i, j := range idx[:n] {
		if j >= 0 && j < len(dst) {
			dst[j] = src[i]
		}
	}
}

// Compress packs the elements of src whose gate value is non-zero into the
// front of dst and returns how many were written. Writing stops when dst is
// full. A NaN gate counts as non-zero.
func Compress[T vdsp.Floats](dst, src, gate []T) int {
	n := min(len(src), len(gate))
	w := 0
	for i := 0; i < n && w < len(dst); i++ {
		if gate[i] != 0 {
			dst[w] = src[i]
			w++
		}
	}
	return w
}

// IsFinite reports whether every element of s is neither NaN nor ±Inf.
func IsFinite[T vdsp.Floats](s []T) bool {
	for _, v := range s {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
