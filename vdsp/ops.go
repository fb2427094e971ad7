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

// The functions in this file are the dispatch entry points used by the
// contrib packages. Each one clamps lengths, returns early on empty input,
// and then walks the backend chain until a backend handles the call.

// Binary computes dst[i] = a[i] op b[i] over the shortest of the three.
func Binary[T Floats](op BinaryOp, dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	dst, a, b = dst[:n], a[:n], b[:n]
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Binary(op, dst, a, b) {
			return
		}
	}
}

// Scalar computes dst[i] = a[i] op s.
func Scalar[T Floats](op ScalarOp, dst, a []T, s T) {
	n := min(len(dst), len(a))
	if n == 0 {
		return
	}
	dst, a = dst[:n], a[:n]
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Scalar(op, dst, a, s) {
			return
		}
	}
}

// Unary computes dst[i] = f(a[i]).
func Unary[T Floats](op UnaryOp, dst, a []T) {
	n := min(len(dst), len(a))
	if n == 0 {
		return
	}
	dst, a = dst[:n], a[:n]
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Unary(op, dst, a) {
			return
		}
	}
}

// Fill sets every element of dst to v.
func Fill[T Floats](dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Fill(dst, v) {
			return
		}
	}
}

// Ramp writes dst[i] = start + i*step.
func Ramp[T Floats](dst []T, start, step T) {
	if len(dst) == 0 {
		return
	}
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Ramp(dst, start, step) {
			return
		}
	}
}

// Clip writes a[i] limited to [lo, hi]. If lo > hi, dst is left unchanged.
func Clip[T Floats](dst, a []T, lo, hi T) {
	n := min(len(dst), len(a))
	if n == 0 || lo > hi {
		return
	}
	dst, a = dst[:n], a[:n]
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Clip(dst, a, lo, hi) {
			return
		}
	}
}

// Lerp writes a[i] + t*(b[i]-a[i]).
func Lerp[T Floats](dst, a, b []T, t T) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	dst, a, b = dst[:n], a[:n], b[:n]
	for _, l := range chainFor[T]().elementwise {
		if l.impl.Lerp(dst, a, b, t) {
			return
		}
	}
}

// Reduce reduces a to one scalar. For empty input the sums and means are
// zero, OpMinValue/OpMinMagnitude give +Inf and OpMaxValue/OpMaxMagnitude
// give -Inf and 0 respectively.
func Reduce[T Floats](op ReduceOp, a []T) T {
	if len(a) == 0 {
		switch op {
		case OpMinValue, OpMinMagnitude:
			return T(math.Inf(1))
		case OpMaxValue:
			return T(math.Inf(-1))
		}
		return 0
	}
	for _, l := range chainFor[T]().reduce {
		if v, ok := l.impl.Reduce(op, a); ok {
			return v
		}
	}
	return 0
}

// Index returns the position and value of the first minimum or maximum.
// Empty input yields index -1.
func Index[T Floats](op IndexOp, a []T) (int, T) {
	if len(a) == 0 {
		if op == OpArgmin {
			return -1, T(math.Inf(1))
		}
		return -1, T(math.Inf(-1))
	}
	for _, l := range chainFor[T]().reduce {
		if i, v, ok := l.impl.Index(op, a); ok {
			return i, v
		}
	}
	return -1, 0
}

// Sort sorts a in place.
func Sort[T Floats](a []T, order Order) {
	if len(a) < 2 {
		return
	}
	for _, l := range chainFor[T]().sort {
		if l.impl.Sort(a, order) {
			return
		}
	}
}

// Argsort fills idx with the permutation that sorts a. Only the first
// min(len(idx), len(a)) elements of a take part.
func Argsort[T Floats](idx []int, a []T, order Order) {
	n := min(len(idx), len(a))
	if n == 0 {
		return
	}
	idx, a = idx[:n], a[:n]
	for _, l := range chainFor[T]().sort {
		if l.impl.Argsort(idx, a, order) {
			return
		}
	}
}

// Gemm computes C = alpha*op(A)*op(B) + beta*C on row-major storage.
// Non-positive dimensions, leading dimensions that are too small, or
// buffers too short for the described matrices make it a no-op.
func Gemm[T Floats](transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	if m <= 0 || n <= 0 || k <= 0 {
		return
	}
	aRows, aCols := m, k
	if transA {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if transB {
		bRows, bCols = n, k
	}
	if !fits(len(a), aRows, aCols, lda) || !fits(len(b), bRows, bCols, ldb) || !fits(len(c), m, n, ldc) {
		return
	}
	a = a[:span(aRows, aCols, lda)]
	b = b[:span(bRows, bCols, ldb)]
	c = c[:span(m, n, ldc)]
	for _, l := range chainFor[T]().matrix {
		if l.impl.Gemm(transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc) {
			return
		}
	}
}

// Copy2D copies a rows x cols block from src to dst using the given row
// pitches. This is the strided move behind matrix assign and extract.
func Copy2D[T Floats](dst []T, dstStride int, src []T, srcStride int, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if !fits(len(dst), rows, cols, dstStride) || !fits(len(src), rows, cols, srcStride) {
		return
	}
	dst = dst[:span(rows, cols, dstStride)]
	src = src[:span(rows, cols, srcStride)]
	for _, l := range chainFor[T]().matrix {
		if l.impl.Copy2D(dst, dstStride, src, srcStride, rows, cols) {
			return
		}
	}
}

// Transpose writes the cols x rows transpose of the rows x cols matrix src
// into dst. Overlapping buffers are transposed through a temporary copy.
func Transpose[T Floats](dst, src []T, rows, cols int) {
	if rows <= 0 || cols <= 0 || len(dst) < rows*cols || len(src) < rows*cols {
		return
	}
	dst, src = dst[:rows*cols], src[:rows*cols]
	if Overlaps(dst, src) {
		tmp := make([]T, len(src))
		copy(tmp, src)
		src = tmp
	}
	for _, l := range chainFor[T]().matrix {
		if l.impl.Transpose(dst, src, rows, cols) {
			return
		}
	}
}

// Window fills dst with a window function of length len(dst).
func Window[T Floats](kind WindowKind, dst []T, flags WindowFlags) {
	if len(dst) == 0 {
		return
	}
	for _, l := range chainFor[T]().signal {
		if l.impl.Window(kind, dst, flags) {
			return
		}
	}
}

// Correlate writes dst[n] = sum_p signal[n+p]*kernel[p] for as many outputs
// as both dst and signal allow. A signal shorter than the kernel leaves dst
// unchanged. It returns the number of outputs written.
func Correlate[T Floats](dst, signal, kernel []T) int {
	p := len(kernel)
	if p == 0 || len(signal) < p {
		return 0
	}
	n := min(len(dst), len(signal)-p+1)
	if n == 0 {
		return 0
	}
	dst, signal = dst[:n], signal[:n+p-1]
	for _, l := range chainFor[T]().signal {
		if l.impl.Correlate(dst, signal, kernel) {
			break
		}
	}
	return n
}

// Decimate runs the FIR kernel over signal keeping every factor-th output.
// It returns the number of outputs written.
func Decimate[T Floats](dst, signal []T, factor int, kernel []T) int {
	p := len(kernel)
	if p == 0 || factor <= 0 || len(signal) < p {
		return 0
	}
	n := min(len(dst), (len(signal)-p)/factor+1)
	if n == 0 {
		return 0
	}
	dst, signal = dst[:n], signal[:(n-1)*factor+p]
	for _, l := range chainFor[T]().signal {
		if l.impl.Decimate(dst, signal, factor, kernel) {
			break
		}
	}
	return n
}

// Poly evaluates the polynomial with coefficients highest order first at
// each x[i]. No coefficients leaves dst unchanged.
func Poly[T Floats](dst, coeffs, x []T) {
	n := min(len(dst), len(x))
	if n == 0 || len(coeffs) == 0 {
		return
	}
	dst, x = dst[:n], x[:n]
	for _, l := range chainFor[T]().signal {
		if l.impl.Poly(dst, coeffs, x) {
			return
		}
	}
}

// Interpolate looks up table at fractional indices idx with linear
// interpolation. Indices below 0 or above len(table)-1 clamp to the ends.
func Interpolate[T Floats](dst, table, idx []T) {
	n := min(len(dst), len(idx))
	if n == 0 || len(table) == 0 {
		return
	}
	dst, idx = dst[:n], idx[:n]
	for _, l := range chainFor[T]().signal {
		if l.impl.Interpolate(dst, table, idx) {
			return
		}
	}
}

// DB converts a to decibels relative to ref.
func DB[T Floats](dst, a []T, ref T, kind DBKind) {
	n := min(len(dst), len(a))
	if n == 0 {
		return
	}
	dst, a = dst[:n], a[:n]
	for _, l := range chainFor[T]().signal {
		if l.impl.DB(dst, a, ref, kind) {
			return
		}
	}
}

// fits reports whether a buffer of length size holds a rows x cols matrix
// stored with the given row pitch.
func fits(size, rows, cols, stride int) bool {
	return rows > 0 && cols > 0 && stride >= cols && size >= span(rows, cols, stride)
}

// span is the number of scalars a rows x cols matrix with the given row
// pitch reaches into its buffer.
func span(rows, cols, stride int) int {
	return (rows-1)*stride + cols
}
