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

package gonum_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vdsp/vdsp"
	"github.com/ajroetker/go-vdsp/vdsp/backend/gonum"
)

// both runs fn once on gonum and once on the portable backend and returns
// the two results.
func both[R any](t *testing.T, fn func() R) (onGonum, onPortable R) {
	t.Helper()
	t.Cleanup(func() { require.NoError(t, vdsp.Use("")) })

	require.NoError(t, vdsp.Use(gonum.Name))
	onGonum = fn()
	require.NoError(t, vdsp.Use(vdsp.PortableName))
	onPortable = fn()
	return onGonum, onPortable
}

func random(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}
	return s
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestRegistered(t *testing.T) {
	require.NoError(t, vdsp.Use(gonum.Name))
	t.Cleanup(func() { require.NoError(t, vdsp.Use("")) })

	assert.Equal(t, gonum.Name, vdsp.ActiveBackend[float64](vdsp.FamilyMatrix))
	assert.Equal(t, gonum.Name, vdsp.ActiveBackend[float32](vdsp.FamilyMatrix))
	assert.Equal(t, vdsp.PortableName, vdsp.ActiveBackend[float32](vdsp.FamilyReduce))
}

func TestGemmAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		transA, transB bool
		m, n, k        int
		alpha, beta    float64
	}{
		{false, false, 7, 5, 3, 1, 0},
		{true, false, 4, 6, 5, 2, 0.5},
		{false, true, 3, 3, 8, -1, 1},
		{true, true, 9, 2, 4, 0.5, 2},
	}
	for _, tc := range cases {
		a := random(rng, tc.m*tc.k)
		b := random(rng, tc.k*tc.n)
		c0 := random(rng, tc.m*tc.n)
		lda, ldb := tc.k, tc.n
		if tc.transA {
			lda = tc.m
		}
		if tc.transB {
			ldb = tc.k
		}
		got, want := both(t, func() []float64 {
			c := append([]float64(nil), c0...)
			vdsp.Gemm(tc.transA, tc.transB, tc.m, tc.n, tc.k, tc.alpha, a, lda, b, ldb, tc.beta, c, tc.n)
			return c
		})
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("Gemm%+v mismatch (-portable +gonum):\n%s", tc, diff)
		}
	}
}

func TestGemmFloat32(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{7, 8, 9, 10, 11, 12}
	got, want := both(t, func() []float32 {
		c := make([]float32, 4)
		vdsp.Gemm(false, false, 2, 2, 3, 1, a, 3, b, 2, 0, c, 2)
		return c
	})
	assert.Equal(t, want, got)
	assert.Equal(t, []float32{58, 64, 139, 154}, got)
}

func TestCopy2D(t *testing.T) {
	src := random(rand.New(rand.NewSource(2)), 20)
	got, want := both(t, func() []float64 {
		dst := make([]float64, 24)
		vdsp.Copy2D(dst, 6, src, 5, 3, 4)
		return dst
	})
	assert.Equal(t, want, got)

	// Overlapping copies are declined and handled by portable.
	got, want = both(t, func() []float64 {
		buf := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
		vdsp.Copy2D(buf[3:], 3, buf, 3, 2, 3)
		return buf
	})
	assert.Equal(t, want, got)
	assert.Equal(t, []float64{0, 1, 2, 0, 1, 2, 3, 4, 5}, got)
}

func TestElementwiseAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, b := random(rng, 33), random(rng, 33)
	for _, op := range []vdsp.BinaryOp{vdsp.OpAdd, vdsp.OpSub, vdsp.OpMul, vdsp.OpDiv} {
		got, want := both(t, func() []float64 {
			dst := make([]float64, len(a))
			vdsp.Binary(op, dst, a, b)
			return dst
		})
		assert.Empty(t, cmp.Diff(want, got, approx), "op %d", op)
	}
	for _, op := range []vdsp.ScalarOp{vdsp.OpAddScalar, vdsp.OpSubScalar, vdsp.OpMulScalar, vdsp.OpDivScalar} {
		got, want := both(t, func() []float64 {
			dst := make([]float64, len(a))
			vdsp.Scalar(op, dst, a, 1.5)
			return dst
		})
		assert.Empty(t, cmp.Diff(want, got, approx), "scalar op %d", op)
	}
}

func TestReduceAgrees(t *testing.T) {
	a := random(rand.New(rand.NewSource(4)), 101)
	ops := []vdsp.ReduceOp{
		vdsp.OpSum, vdsp.OpSumSquares, vdsp.OpMean, vdsp.OpMeanSquare,
		vdsp.OpRMS, vdsp.OpMinValue, vdsp.OpMaxValue, vdsp.OpVariance,
	}
	for _, op := range ops {
		got, want := both(t, func() float64 { return vdsp.Reduce(op, a) })
		assert.InDelta(t, want, got, 1e-12, "reduce op %d", op)
	}
	for _, op := range []vdsp.IndexOp{vdsp.OpArgmin, vdsp.OpArgmax} {
		got, want := both(t, func() int {
			i, _ := vdsp.Index(op, a)
			return i
		})
		assert.Equal(t, want, got)
	}
}

func TestArgsortStable(t *testing.T) {
	a := []float64{3, 1, 2, 1, 3, 0}
	got, want := both(t, func() []int {
		idx := make([]int, len(a))
		vdsp.Argsort(idx, a, vdsp.Ascending)
		return idx
	})
	assert.Equal(t, []int{5, 1, 3, 2, 0, 4}, got)
	assert.Equal(t, want, got)
	assert.Equal(t, []float64{3, 1, 2, 1, 3, 0}, a, "input untouched")
}

func TestWindowsAgree(t *testing.T) {
	for _, kind := range []vdsp.WindowKind{vdsp.Blackman, vdsp.Hamming, vdsp.Hanning} {
		for _, flags := range []vdsp.WindowFlags{0, vdsp.WindowSymmetric, vdsp.WindowSymmetric | vdsp.WindowHalf} {
			got, want := both(t, func() []float64 {
				dst := make([]float64, 17)
				vdsp.Window(kind, dst, flags)
				return dst
			})
			assert.Empty(t, cmp.Diff(want, got, approx), "%v flags %d", kind, flags)
		}
	}
}
