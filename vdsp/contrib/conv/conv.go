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

// Package conv provides 1-D correlation, convolution, and FIR decimation.
//
// All functions work in "valid" mode unless stated: an output is produced
// only where the kernel fits entirely inside the signal, so a signal of
// length N and a kernel of length P give N-P+1 outputs. Each function
// writes as many outputs as dst holds and returns the number written.
package conv

import (
	"slices"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// Correlate writes dst[n] = Σ signal[n+p]·kernel[p].
func Correlate[T vdsp.Floats](dst, signal, kernel []T) int {
	return vdsp.Correlate(dst, signal, kernel)
}

// Convolve writes dst[n] = Σ signal[n+p]·kernel[P-1-p], the correlation
// with the kernel reversed.
func Convolve[T vdsp.Floats](dst, signal, kernel []T) int {
	if len(kernel) == 0 {
		return 0
	}
	return vdsp.Correlate(dst, signal, reversed(kernel))
}

// ConvolveFull returns the full linear convolution of signal and kernel,
// N+P-1 samples long, treating samples outside the signal as zero.
func ConvolveFull[T vdsp.Floats](signal, kernel []T) []T {
	p := len(kernel)
	if len(signal) == 0 || p == 0 {
		return nil
	}
	padded := make([]T, len(signal)+2*(p-1))
	copy(padded[p-1:], signal)
	out := make([]T, len(signal)+p-1)
	vdsp.Correlate(out, padded, reversed(kernel))
	return out
}

// Decimate filters signal with kernel and keeps every factor-th output:
// dst[n] = Σ signal[n·factor+p]·kernel[p].
func Decimate[T vdsp.Floats](dst, signal []T, factor int, kernel []T) int {
	return vdsp.Decimate(dst, signal, factor, kernel)
}

// OutputLen is the number of valid outputs for a signal of length n, a
// kernel of length p and the given decimation factor (1 for none).
func OutputLen(n, p, factor int) int {
	if p <= 0 || factor <= 0 || n < p {
		return 0
	}
	return (n-p)/factor + 1
}

// MovingAverage writes the mean of each width-sample window of signal.
func MovingAverage[T vdsp.Floats](dst, signal []T, width int) int {
	if width <= 0 {
		return 0
	}
	kernel := make([]T, width)
	vdsp.Fill(kernel, 1/T(width))
	return vdsp.Correlate(dst, signal, kernel)
}

func reversed[T vdsp.Floats](s []T) []T {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}
