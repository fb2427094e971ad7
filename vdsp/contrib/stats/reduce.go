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

// Package stats provides reductions over float32 and float64 slices: sums,
// means, extrema and their positions, spread, and vector norms.
//
// Empty input never panics. Sums and means of an empty slice are 0, Min and
// MinMagnitude are +Inf, Max is -Inf and MaxMagnitude is 0. Argmin and
// Argmax return -1.
package stats

import (
	"math"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// Sum returns the sum of all elements.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func Sum[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpSum, v) }

// SumSquares returns the sum of v[i]².
func SumSquares[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpSumSquares, v) }

// SumMagnitudes returns the sum of |v[i]|.
func SumMagnitudes[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpSumMagnitudes, v) }

// Mean returns the arithmetic mean.
func Mean[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMean, v) }

// MeanMagnitude returns the mean of |v[i]|.
func MeanMagnitude[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMeanMagnitude, v) }

// MeanSquare returns the mean of v[i]².
func MeanSquare[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMeanSquare, v) }

// RMS returns the root mean square.
func RMS[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpRMS, v) }

// Min returns the smallest element.
func Min[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMinValue, v) }

// Max returns the largest element.
func Max[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMaxValue, v) }

// MinMax returns the smallest and largest elements.
func MinMax[T vdsp.Floats](v []T) (lo, hi T) {
	return Min(v), Max(v)
}

// MinMagnitude returns the smallest |v[i]|.
func MinMagnitude[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMinMagnitude, v) }

// MaxMagnitude returns the largest |v[i]|.
func MaxMagnitude[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpMaxMagnitude, v) }

// Argmin returns the index of the minimum value. If several elements share
// it, the first index is returned.
func Argmin[T vdsp.Floats](v []T) int {
	i, _ := vdsp.Index(vdsp.OpArgmin, v)
	return i
}

// Argmax returns the index of the maximum value. If several elements share
// it, the first index is returned.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	idx := Argmax(data)  // 4 (index of value 5)
func Argmax[T vdsp.Floats](v []T) int {
	i, _ := vdsp.Index(vdsp.OpArgmax, v)
	return i
}

// Variance returns the population variance.
func Variance[T vdsp.Floats](v []T) T { return vdsp.Reduce(vdsp.OpVariance, v) }

// StdDev returns the population standard deviation.
func StdDev[T vdsp.Floats](v []T) T {
	return T(math.Sqrt(float64(Variance(v))))
}

// MeanStd returns the mean and population standard deviation.
func MeanStd[T vdsp.Floats](v []T) (mean, std T) {
	return Mean(v), StdDev(v)
}
