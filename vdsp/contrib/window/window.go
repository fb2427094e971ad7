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

// Package window generates the classic tapering windows used before spectral
// analysis: Blackman, Hamming, and Hanning.
//
// Windows are periodic by default (denominator N), which is the form that
// tiles without a seam under overlap-add. The Symmetric option switches to
// the N-1 denominator that filter design uses.
//
//	w := window.Hanning[float32](1024)
//	window.Apply(frame, frame, w)
package window

import "github.com/ajroetker/go-vdsp/vdsp"

// Option adjusts how a window is generated.
type Option func(*options)

type options struct {
	flags vdsp.WindowFlags
}

// Symmetric makes the window symmetric about its centre: the first and last
// samples are equal.
func Symmetric() Option {
	return func(o *options) { o.flags |= vdsp.WindowSymmetric }
}

// Half computes only the first (N+1)/2 samples. The rest of the destination
// is left untouched.
func Half() Option {
	return func(o *options) { o.flags |= vdsp.WindowHalf }
}

// Normalized scales a Hanning window to unit mean square. Other kinds ignore
// it.
func Normalized() Option {
	return func(o *options) { o.flags |= vdsp.WindowNormalized }
}

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Blackman returns a Blackman window of length n:
// 0.42 - 0.5cos(2πi/N) + 0.08cos(4πi/N).
func Blackman[T vdsp.Floats](n int, opts ...Option) []T {
	return generate[T](vdsp.Blackman, n, opts)
}

// Hamming returns a Hamming window of length n: 0.54 - 0.46cos(2πi/N).
func Hamming[T vdsp.Floats](n int, opts ...Option) []T {
	return generate[T](vdsp.Hamming, n, opts)
}

// Hanning returns a Hanning window of length n: 0.5 - 0.5cos(2πi/N).
func Hanning[T vdsp.Floats](n int, opts ...Option) []T {
	return generate[T](vdsp.Hanning, n, opts)
}

// BlackmanTo fills dst with a Blackman window of length len(dst).
func BlackmanTo[T vdsp.Floats](dst []T, opts ...Option) {
	vdsp.Window(vdsp.Blackman, dst, gather(opts).flags)
}

// HammingTo fills dst with a Hamming window of length len(dst).
func HammingTo[T vdsp.Floats](dst []T, opts ...Option) {
	vdsp.Window(vdsp.Hamming, dst, gather(opts).flags)
}

// HanningTo fills dst with a Hanning window of length len(dst).
func HanningTo[T vdsp.Floats](dst []T, opts ...Option) {
	vdsp.Window(vdsp.Hanning, dst, gather(opts).flags)
}

// generate returns only the computed samples, so a Half window of length n
// has (n+1)/2 elements.
func generate[T vdsp.Floats](kind vdsp.WindowKind, n int, opts []Option) []T {
	if n <= 0 {
		return nil
	}
	o := gather(opts)
	dst := make([]T, n)
	vdsp.Window(kind, dst, o.flags)
	if o.flags&vdsp.WindowHalf != 0 {
		return dst[:(n+1)/2]
	}
	return dst
}

// Apply writes signal[i]*window[i] to dst over their common length.
func Apply[T vdsp.Floats](dst, signal, window []T) {
	vdsp.Binary(vdsp.OpMul, dst, signal, window)
}
