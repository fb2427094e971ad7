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

import "math"

// hanningNorm scales a Hanning window to unit mean square: the mean of
// (0.5 - 0.5cos)^2 over one period is 3/8.
var hanningNorm = math.Sqrt(8.0 / 3.0)

type portableSignal[T Floats] struct{}

func (portableSignal[T]) Window(kind WindowKind, dst []T, flags WindowFlags) bool {
	n := len(dst)
	count := n
	if flags&WindowHalf != 0 {
		count = (n + 1) / 2
	}
	denom := float64(n)
	if flags&WindowSymmetric != 0 {
		denom = float64(n - 1)
	}
	if denom == 0 {
		dst[0] = 1
		return true
	}

	scale := 1.0
	if kind == Hanning && flags&WindowNormalized != 0 {
		scale = hanningNorm
	}
	for i := range count {
		x := 2 * math.Pi * float64(i) / denom
		var w float64
		switch kind {
		case Blackman:
			w = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
		case Hamming:
			w = 0.54 - 0.46*math.Cos(x)
		case Hanning:
			w = 0.5 - 0.5*math.Cos(x)
		default:
			return false
		}
		dst[i] = T(w * scale)
	}
	return true
}

func (portableSignal[T]) Correlate(dst, signal, kernel []T) bool {
	for i := range dst {
		window := signal[i : i+len(kernel)]
		var acc T
		for p, f := range kernel {
			acc += window[p] * f
		}
		dst[i] = acc
	}
	return true
}

func (portableSignal[T]) Decimate(dst, signal []T, factor int, kernel []T) bool {
	for i := range dst {
		window := signal[i*factor : i*factor+len(kernel)]
		var acc T
		for p, f := range kernel {
			acc += window[p] * f
		}
		dst[i] = acc
	}
	return true
}

func (portableSignal[T]) Poly(dst, coeffs, x []T) bool {
	for i, xi := range x {
		acc := coeffs[0]
		for _, c := range coeffs[1:] {
			acc = acc*xi + c
		}
		dst[i] = acc
	}
	return true
}

func (portableSignal[T]) Interpolate(dst, table, idx []T) bool {
	last := len(table) - 1
	for i, b := range idx {
		switch {
		case math.IsNaN(float64(b)):
			dst[i] = b
		case b <= 0:
			dst[i] = table[0]
		case b >= T(last):
			dst[i] = table[last]
		default:
			j := int(b)
			f := b - T(j)
			dst[i] = table[j] + f*(table[j+1]-table[j])
		}
	}
	return true
}

func (portableSignal[T]) DB(dst, a []T, ref T, kind DBKind) bool {
	alpha := 10.0
	if kind == DBAmplitude {
		alpha = 20.0
	}
	r := float64(ref)
	for i, v := range a {
		dst[i] = T(alpha * math.Log10(float64(v)/r))
	}
	return true
}
