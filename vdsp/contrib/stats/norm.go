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

package stats

import (
	"math"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// Dot returns the dot product of a and b over their common length. It is
// computed as a 1×k by k×1 matrix product so matrix backends pick it up.
func Dot[T vdsp.Floats](a, b []T) T {
	k := min(len(a), len(b))
	if k == 0 {
		return 0
	}
	var out [1]T
	vdsp.Gemm(false, false, 1, 1, k, 1, a[:k], k, b[:k], 1, 0, out[:], 1)
	return out[0]
}

// SquaredNorm returns the squared L2 norm of v.
func SquaredNorm[T vdsp.Floats](v []T) T { return SumSquares(v) }

// Norm returns the L2 norm of v.
func Norm[T vdsp.Floats](v []T) T {
	return T(math.Sqrt(float64(SumSquares(v))))
}

// L2SquaredDistance returns the squared Euclidean distance between a and b
// over their common length.
func L2SquaredDistance[T vdsp.Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	diff := make([]T, n)
	vdsp.Binary(vdsp.OpSub, diff, a, b)
	return SumSquares(diff)
}

// L2Distance returns the Euclidean distance between a and b.
func L2Distance[T vdsp.Floats](a, b []T) T {
	return T(math.Sqrt(float64(L2SquaredDistance(a, b))))
}

// Normalize scales dst in place to unit L2 norm. A zero vector is left
// unchanged.
//
// Example:
//
//	v := []float32{3, 0, 4}
//	Normalize(v)  // v is now [0.6, 0, 0.8]
func Normalize[T vdsp.Floats](dst []T) {
	NormalizeTo(dst, dst)
}

// NormalizeTo writes src scaled to unit L2 norm into dst. If src has zero
// norm it is copied unchanged.
func NormalizeTo[T vdsp.Floats](dst, src []T) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	norm := Norm(src[:n])
	if norm == 0 {
		copy(dst, src[:n])
		return
	}
	vdsp.Scalar(vdsp.OpDivScalar, dst, src, norm)
}
