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

// Backend families. Each family is one interface; every method reports
// whether it handled the request. Returning false passes the call on to the
// next backend in priority order, ending with the portable backend which
// handles everything. This lets a backend cover only the operations its
// library provides.
//
// All slices handed to a backend method have already been trimmed to
// consistent lengths and are non-empty; backends never need to clamp.

// Family identifies one backend interface.
type Family int

const (
	FamilyElementwise Family = iota
	FamilyReduce
	FamilySort
	FamilyMatrix
	FamilySignal
)

// Families lists every family in declaration order.
var Families = []Family{FamilyElementwise, FamilyReduce, FamilySort, FamilyMatrix, FamilySignal}

func (f Family) String() string {
	switch f {
	case FamilyElementwise:
		return "elementwise"
	case FamilyReduce:
		return "reduce"
	case FamilySort:
		return "sort"
	case FamilyMatrix:
		return "matrix"
	case FamilySignal:
		return "signal"
	default:
		return "unknown"
	}
}

// BinaryOp is a vector-vector elementwise operation: dst[i] = a[i] op b[i].
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod // fmod: result has the sign of a[i]
	OpPow // a[i] raised to b[i]
	OpAtan2
	OpMin
	OpMax
	OpCopySign
)

// ScalarOp is a vector-scalar elementwise operation: dst[i] = a[i] op s.
type ScalarOp int

const (
	OpAddScalar ScalarOp = iota
	OpSubScalar
	OpMulScalar
	OpDivScalar
	OpScalarDiv // s / a[i]
	OpMinScalar
	OpMaxScalar
)

// UnaryOp is an elementwise function: dst[i] = f(a[i]).
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpAbs
	OpSquare
	OpSqrt
	OpRsqrt
	OpReciprocal
	OpExp
	OpExp2
	OpExpm1
	OpLog
	OpLog2
	OpLog10
	OpLog1p
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh
	OpCeil
	OpFloor
	OpTrunc
	OpRound // nearest, ties to even
	OpSigmoid
	OpErf
)

// ReduceOp reduces a vector to one scalar.
type ReduceOp int

const (
	OpSum ReduceOp = iota
	OpSumSquares
	OpSumMagnitudes
	OpMean
	OpMeanMagnitude
	OpMeanSquare
	OpRMS
	OpMinValue
	OpMaxValue
	OpMinMagnitude
	OpMaxMagnitude
	OpVariance // population variance
)

// IndexOp locates an extreme element.
type IndexOp int

const (
	OpArgmin IndexOp = iota
	OpArgmax
)

// Order is a sort direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// WindowKind selects a window function.
type WindowKind int

const (
	Blackman WindowKind = iota
	Hamming
	Hanning
)

func (k WindowKind) String() string {
	switch k {
	case Blackman:
		return "blackman"
	case Hamming:
		return "hamming"
	case Hanning:
		return "hanning"
	default:
		return "unknown"
	}
}

// WindowFlags modify window generation.
type WindowFlags uint8

const (
	// WindowSymmetric uses N-1 as the period denominator instead of N.
	WindowSymmetric WindowFlags = 1 << iota
	// WindowHalf only writes the first (N+1)/2 samples.
	WindowHalf
	// WindowNormalized scales a Hanning window to unit mean square.
	WindowNormalized
)

// DBKind selects the decibel convention.
type DBKind int

const (
	// DBPower is 10*log10(a/ref).
	DBPower DBKind = iota
	// DBAmplitude is 20*log10(a/ref).
	DBAmplitude
)

// ElementwiseBackend computes elementwise arithmetic and transcendental
// functions. dst may alias any input.
type ElementwiseBackend[T Floats] interface {
	Binary(op BinaryOp, dst, a, b []T) bool
	Scalar(op ScalarOp, dst, a []T, s T) bool
	Unary(op UnaryOp, dst, a []T) bool
	// Fill sets every element of dst to v.
	Fill(dst []T, v T) bool
	// Ramp writes dst[i] = start + i*step.
	Ramp(dst []T, start, step T) bool
	// Clip writes a[i] limited to [lo, hi].
	Clip(dst, a []T, lo, hi T) bool
	// Lerp writes a[i] + t*(b[i]-a[i]).
	Lerp(dst, a, b []T, t T) bool
}

// ReduceBackend computes reductions.
type ReduceBackend[T Floats] interface {
	Reduce(op ReduceOp, a []T) (T, bool)
	// Index returns the position and value of the first extreme element.
	Index(op IndexOp, a []T) (int, T, bool)
}

// SortBackend sorts.
type SortBackend[T Floats] interface {
	// Sort sorts a in place.
	Sort(a []T, order Order) bool
	// Argsort writes into idx (len(idx) == len(a)) the permutation that
	// sorts a, leaving a untouched.
	Argsort(idx []int, a []T, order Order) bool
}

// MatrixBackend covers dense row-major matrix primitives.
type MatrixBackend[T Floats] interface {
	// Gemm computes C = alpha*op(A)*op(B) + beta*C with row-major storage,
	// where op(X) is X or its transpose. op(A) is m x k, op(B) is k x n and
	// C is m x n. When beta is zero C is overwritten without being read.
	Gemm(transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) bool
	// Copy2D copies a rows x cols block between buffers with the given row
	// pitches. src and dst may overlap.
	Copy2D(dst []T, dstStride int, src []T, srcStride int, rows, cols int) bool
	// Transpose writes the cols x rows transpose of the rows x cols src.
	// dst and src do not overlap.
	Transpose(dst, src []T, rows, cols int) bool
}

// SignalBackend covers windowing, filtering and table operations.
type SignalBackend[T Floats] interface {
	Window(kind WindowKind, dst []T, flags WindowFlags) bool
	// Correlate writes dst[n] = sum_p signal[n+p]*kernel[p], where
	// len(signal) == len(dst)+len(kernel)-1.
	Correlate(dst, signal, kernel []T) bool
	// Decimate writes dst[n] = sum_p signal[n*factor+p]*kernel[p], where
	// len(signal) == (len(dst)-1)*factor+len(kernel).
	Decimate(dst, signal []T, factor int, kernel []T) bool
	// Poly evaluates the polynomial with coefficients highest order first.
	Poly(dst, coeffs, x []T) bool
	// Interpolate linearly interpolates table at fractional indices,
	// clamping indices to the table range.
	Interpolate(dst, table, idx []T) bool
	DB(dst, a []T, ref T, kind DBKind) bool
}

// Kernels groups the families a backend provides for one precision.
// Nil families are skipped during dispatch.
type Kernels[T Floats] struct {
	Elementwise ElementwiseBackend[T]
	Reduce      ReduceBackend[T]
	Sort        SortBackend[T]
	Matrix      MatrixBackend[T]
	Signal      SignalBackend[T]
}

// Families returns which families are non-nil.
func (k Kernels[T]) Families() []Family {
	var out []Family
	if k.Elementwise != nil {
		out = append(out, FamilyElementwise)
	}
	if k.Reduce != nil {
		out = append(out, FamilyReduce)
	}
	if k.Sort != nil {
		out = append(out, FamilySort)
	}
	if k.Matrix != nil {
		out = append(out, FamilyMatrix)
	}
	if k.Signal != nil {
		out = append(out, FamilySignal)
	}
	return out
}

// Backend is a registry entry.
type Backend struct {
	// Name identifies the backend in Use and VDSP_BACKEND.
	Name string
	// Priority orders backends; the highest available priority is tried first.
	Priority int
	// Available reports whether the backend can run here. Nil means always.
	Available func() bool

	Float32 Kernels[float32]
	Float64 Kernels[float64]
}

func (b *Backend) available() bool {
	return b.Available == nil || b.Available()
}
