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

package vdsp

import (
	"cmp"
	"math"
	"slices"
)

// maxAccumulators bounds the number of independent partial sums, which is
// MaxLanes for float32 on AVX-512.
const maxAccumulators = 16

type portableReduce[T Floats] struct{}

func (portableReduce[T]) Reduce(op ReduceOp, a []T) (T, bool) {
	n := T(len(a))
	switch op {
	case OpSum:
		return sumOf(a, identity[T]), true
	case OpSumSquares:
		return sumOf(a, square[T]), true
	case OpSumMagnitudes:
		return sumOf(a, abs[T]), true
	case OpMean:
		return sumOf(a, identity[T]) / n, true
	case OpMeanMagnitude:
		return sumOf(a, abs[T]) / n, true
	case OpMeanSquare:
		return sumOf(a, square[T]) / n, true
	case OpRMS:
		return T(math.Sqrt(float64(sumOf(a, square[T]) / n))), true
	case OpMinValue:
		m := a[0]
		for _, v := range a[1:] {
			if v < m {
				m = v
			}
		}
		return m, true
	case OpMaxValue:
		m := a[0]
		for _, v := range a[1:] {
			if v > m {
				m = v
			}
		}
		return m, true
	case OpMinMagnitude:
		m := abs(a[0])
		for _, v := range a[1:] {
			if av := abs(v); av < m {
				m = av
			}
		}
		return m, true
	case OpMaxMagnitude:
		m := abs(a[0])
		for _, v := range a[1:] {
			if av := abs(v); av > m {
				m = av
			}
		}
		return m, true
	case OpVariance:
		mean := sumOf(a, identity[T]) / n
		return sumOf(a, func(v T) T { d := v - mean; return d * d }) / n, true
	}
	return 0, false
}

func (portableReduce[T]) Index(op IndexOp, a []T) (int, T, bool) {
	best := 0
	switch op {
	case OpArgmin:
		for i, v := range a[1:] {
			if v < a[best] {
				best = i + 1
			}
		}
	case OpArgmax:
		for i, v := range a[1:] {
			if v > a[best] {
				best = i + 1
			}
		}
	default:
		return 0, 0, false
	}
	return best, a[best], true
}

// sumOf accumulates f(a[i]) into MaxLanes independent partial sums before
// combining them, which shortens the dependency chain and keeps rounding
// error closer to a pairwise sum.
func sumOf[T Floats](a []T, f func(T) T) T {
	lanes := min(MaxLanes[T](), maxAccumulators)
	var acc [maxAccumulators]T

	var i int
	for i = 0; i+lanes <= len(a); i += lanes {
		for j := range lanes {
			acc[j] += f(a[i+j])
		}
	}

	var s T
	for j := range lanes {
		s += acc[j]
	}
	// Handle tail elements
	for ; i < len(a); i++ {
		s += f(a[i])
	}
	return s
}

func identity[T Floats](v T) T { return v }
func square[T Floats](v T) T   { return v * v }
func abs[T Floats](v T) T      { return T(math.Abs(float64(v))) }

type portableSort[T Floats] struct{}

func (portableSort[T]) Sort(a []T, order Order) bool {
	if order == Descending {
		slices.SortFunc(a, func(x, y T) int { return cmp.Compare(y, x) })
		return true
	}
	slices.Sort(a)
	return true
}

func (portableSort[T]) Argsort(idx []int, a []T, order Order) bool {
	for i := range idx {
		idx[i] = i
	}
	if order == Descending {
		slices.SortStableFunc(idx, func(i, j int) int { return cmp.Compare(a[j], a[i]) })
		return true
	}
	slices.SortStableFunc(idx, func(i, j int) int { return cmp.Compare(a[i], a[j]) })
	return true
}
