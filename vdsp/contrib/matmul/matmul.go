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

// Package matmul provides dense matrix multiplication and transposition on
// row-major float32 and float64 slices.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN
//	a := make([]float32, M*K)  // row-major
//	b := make([]float32, K*N)  // row-major
//	c := make([]float32, M*N)  // output, row-major
//
//	matmul.MatMul(a, b, c, M, N, K)
//
// The product runs on the active vdsp backend: cblas on darwin, gonum BLAS
// when that backend is linked in, and a pure Go loop otherwise. The
// WithPool variants additionally split rows across a workerpool.Pool.
package matmul

import (
	"github.com/ajroetker/go-vdsp/vdsp"
	"github.com/ajroetker/go-vdsp/vdsp/contrib/workerpool"
)

// Size-based dispatch thresholds.
const (
	// Below this total ops count the row split costs more than it saves.
	SmallMatrixThreshold = 64 * 64 * 64

	// RowsPerStrip is the smallest number of rows handed to one worker.
	RowsPerStrip = 8
)

// MatMul computes C = A * B where A is m×k, B is k×n and C is m×n. C is
// overwritten. Slices too short for the given shapes make it a no-op.
func MatMul[T vdsp.Floats](a, b, c []T, m, n, k int) {
	vdsp.Gemm(false, false, m, n, k, 1, a, k, b, n, 0, c, n)
}

// MatMulFloat32 is the non-generic version for float32.
func MatMulFloat32(a, b, c []float32, m, n, k int) {
	MatMul(a, b, c, m, n, k)
}

// MatMulFloat64 is the non-generic version for float64.
func MatMulFloat64(a, b, c []float64, m, n, k int) {
	MatMul(a, b, c, m, n, k)
}

// MatMulKLast computes C = A * Bᵀ where A is m×k and B is n×k, the layout
// where both operands keep K as the last dimension.
func MatMulKLast[T vdsp.Floats](a, b, c []T, m, n, k int) {
	vdsp.Gemm(false, true, m, n, k, 1, a, k, b, k, 0, c, n)
}

// MatMulAdd computes C += A * B.
func MatMulAdd[T vdsp.Floats](a, b, c []T, m, n, k int) {
	vdsp.Gemm(false, false, m, n, k, 1, a, k, b, n, 1, c, n)
}

// Gemm computes C = alpha*op(A)*op(B) + beta*C with explicit leading
// dimensions, where op transposes its operand when the flag is set. When
// beta is zero C is not read, so it may hold NaNs.
func Gemm[T vdsp.Floats](transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	vdsp.Gemm(transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Transpose writes the cols×rows transpose of the rows×cols matrix src into
// dst.
func Transpose[T vdsp.Floats](dst, src []T, rows, cols int) {
	vdsp.Transpose(dst, src, rows, cols)
}

// MatMulWithPool is MatMul with the rows of A and C split across pool.
// A nil pool runs on the calling goroutine.
func MatMulWithPool[T vdsp.Floats](pool *workerpool.Pool, a, b, c []T, m, n, k int) {
	if m <= 0 || n <= 0 || k <= 0 || len(a) < m*k || len(b) < k*n || len(c) < m*n {
		return
	}
	pool.ParallelForMin(m, RowsPerStrip, func(start, end int) {
		rows := end - start
		vdsp.Gemm(false, false, rows, n, k, 1, a[start*k:end*k], k, b, n, 0, c[start*n:end*n], n)
	})
}

// MatMulAuto picks between the single call and the row-parallel path based
// on the total number of multiply-adds. Small products run directly.
func MatMulAuto[T vdsp.Floats](pool *workerpool.Pool, a, b, c []T, m, n, k int) {
	if pool == nil || m*n*k < SmallMatrixThreshold {
		MatMul(a, b, c, m, n, k)
		return
	}
	MatMulWithPool(pool, a, b, c, m, n, k)
}

// MatMulAutoFloat32 is the non-generic version for float32.
func MatMulAutoFloat32(pool *workerpool.Pool, a, b, c []float32, m, n, k int) {
	MatMulAuto(pool, a, b, c, m, n, k)
}

// MatMulAutoFloat64 is the non-generic version for float64.
func MatMulAutoFloat64(pool *workerpool.Pool, a, b, c []float64, m, n, k int) {
	MatMulAuto(pool, a, b, c, m, n, k)
}
