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

// Package gonum registers a vdsp backend built on gonum's BLAS, LAPACK,
// floats, stat, and dsp/window packages.
//
// Import it for its side effect:
//
//	import _ "github.com/ajroetker/go-vdsp/vdsp/backend/gonum"
//
// It covers matrix products for both precisions, and for float64 the strided
// block copy, the elementwise basics, the common reductions, stable
// argsort, and symmetric windows. Everything else falls through to the
// portable backend.
package gonum

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// Name is the registry name of this backend.
const Name = "gonum"

// Priority ranks gonum above the portable backend and below native
// platform libraries.
const Priority = 10

func init() {
	vdsp.MustRegister(Backend())
}

// Backend returns the backend description registered by this package.
func Backend() vdsp.Backend {
	return vdsp.Backend{
		Name:     Name,
		Priority: Priority,
		Float32: vdsp.Kernels[float32]{
			Matrix: matrix32{},
		},
		Float64: vdsp.Kernels[float64]{
			Elementwise: elementwise64{},
			Reduce:      reduce64{},
			Sort:        sort64{},
			Matrix:      matrix64{},
			Signal:      signal64{},
		},
	}
}

func trans(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

// general64 describes a rows×cols row-major block with the given stride.
func general64(data []float64, rows, cols, stride int) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: stride, Data: data}
}

type matrix64 struct{}

func (matrix64) Gemm(transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) bool {
	ar, ac := m, k
	if transA {
		ar, ac = k, m
	}
	br, bc := k, n
	if transB {
		br, bc = n, k
	}
	blas64.Gemm(trans(transA), trans(transB), alpha,
		general64(a, ar, ac, lda), general64(b, br, bc, ldb),
		beta, general64(c, m, n, ldc))
	return true
}

func (matrix64) Copy2D(dst []float64, dstStride int, src []float64, srcStride int, rows, cols int) bool {
	// Lacpy has no defined behaviour for overlapping operands.
	if vdsp.Overlaps(dst, src) {
		return false
	}
	lapack64.Lacpy(blas.All, general64(dst, rows, cols, dstStride), general64(src, rows, cols, srcStride))
	return true
}

func (matrix64) Transpose(dst, src []float64, rows, cols int) bool { return false }

type matrix32 struct{}

func (matrix32) Gemm(transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) bool {
	ar, ac := m, k
	if transA {
		ar, ac = k, m
	}
	br, bc := k, n
	if transB {
		br, bc = n, k
	}
	blas32.Gemm(trans(transA), trans(transB), alpha,
		blas32.General{Rows: ar, Cols: ac, Stride: lda, Data: a},
		blas32.General{Rows: br, Cols: bc, Stride: ldb, Data: b},
		beta, blas32.General{Rows: m, Cols: n, Stride: ldc, Data: c})
	return true
}

func (matrix32) Copy2D([]float32, int, []float32, int, int, int) bool { return false }
func (matrix32) Transpose([]float32, []float32, int, int) bool        { return false }

type elementwise64 struct{}

func (elementwise64) Binary(op vdsp.BinaryOp, dst, a, b []float64) bool {
	switch op {
	case vdsp.OpAdd:
		floats.AddTo(dst, a, b)
	case vdsp.OpSub:
		floats.SubTo(dst, a, b)
	case vdsp.OpMul:
		floats.MulTo(dst, a, b)
	case vdsp.OpDiv:
		floats.DivTo(dst, a, b)
	default:
		return false
	}
	return true
}

func (elementwise64) Scalar(op vdsp.ScalarOp, dst, a []float64, s float64) bool {
	switch op {
	case vdsp.OpMulScalar:
		floats.ScaleTo(dst, s, a)
	case vdsp.OpDivScalar:
		floats.ScaleTo(dst, 1/s, a)
	case vdsp.OpAddScalar:
		copy(dst, a)
		floats.AddConst(s, dst)
	case vdsp.OpSubScalar:
		copy(dst, a)
		floats.AddConst(-s, dst)
	default:
		return false
	}
	return true
}

func (elementwise64) Unary(vdsp.UnaryOp, []float64, []float64) bool { return false }

func (elementwise64) Fill([]float64, float64) bool                       { return false }
func (elementwise64) Ramp([]float64, float64, float64) bool              { return false }
func (elementwise64) Clip([]float64, []float64, float64, float64) bool   { return false }
func (elementwise64) Lerp([]float64, []float64, []float64, float64) bool { return false }

type reduce64 struct{}

func (reduce64) Reduce(op vdsp.ReduceOp, a []float64) (float64, bool) {
	switch op {
	case vdsp.OpSum:
		return floats.Sum(a), true
	case vdsp.OpSumSquares:
		return floats.Dot(a, a), true
	case vdsp.OpMean:
		return stat.Mean(a, nil), true
	case vdsp.OpMeanSquare:
		return floats.Dot(a, a) / float64(len(a)), true
	case vdsp.OpRMS:
		return math.Sqrt(floats.Dot(a, a) / float64(len(a))), true
	case vdsp.OpMinValue:
		return floats.Min(a), true
	case vdsp.OpMaxValue:
		return floats.Max(a), true
	case vdsp.OpVariance:
		return stat.PopVariance(a, nil), true
	}
	return 0, false
}

func (reduce64) Index(op vdsp.IndexOp, a []float64) (int, float64, bool) {
	var i int
	switch op {
	case vdsp.OpArgmin:
		i = floats.MinIdx(a)
	case vdsp.OpArgmax:
		i = floats.MaxIdx(a)
	default:
		return 0, 0, false
	}
	return i, a[i], true
}

type sort64 struct{}

func (sort64) Sort([]float64, vdsp.Order) bool { return false }

func (sort64) Argsort(idx []int, a []float64, order vdsp.Order) bool {
	if order != vdsp.Ascending {
		return false
	}
	scratch := make([]float64, len(a))
	copy(scratch, a)
	floats.ArgsortStable(scratch, idx)
	return true
}

type signal64 struct{}

// Window handles full symmetric windows only; gonum's windows use the N-1
// denominator.
func (signal64) Window(kind vdsp.WindowKind, dst []float64, flags vdsp.WindowFlags) bool {
	if flags != vdsp.WindowSymmetric || len(dst) < 2 {
		return false
	}
	var fn func([]float64) []float64
	switch kind {
	case vdsp.Blackman:
		fn = window.Blackman
	case vdsp.Hamming:
		fn = window.Hamming
	case vdsp.Hanning:
		fn = window.Hann
	default:
		return false
	}
	for i := range dst {
		dst[i] = 1
	}
	fn(dst)
	return true
}

func (signal64) Correlate([]float64, []float64, []float64) bool     { return false }
func (signal64) Decimate([]float64, []float64, int, []float64) bool { return false }
func (signal64) Poly([]float64, []float64, []float64) bool          { return false }
func (signal64) Interpolate([]float64, []float64, []float64) bool   { return false }
func (signal64) DB([]float64, []float64, float64, vdsp.DBKind) bool { return false }
