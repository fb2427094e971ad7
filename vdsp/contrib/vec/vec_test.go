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

package vec

import (
	"math"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vdsp/vdsp"
)

func approxEqual(fraction float64) cmp.Option {
	return cmpopts.EquateApprox(fraction, 1e-12)
}

func TestArithmeticTo(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}

	tests := []struct {
		name string
		fn   func(dst, a, b []float64)
		want []float64
	}{
		{"AddTo", AddTo[float64], []float64{6, 6, 6, 6, 6}},
		{"SubTo", SubTo[float64], []float64{-4, -2, 0, 2, 4}},
		{"MulTo", MulTo[float64], []float64{5, 8, 9, 8, 5}},
		{"DivTo", DivTo[float64], []float64{0.2, 0.5, 1, 2, 5}},
		{"ModTo", ModTo[float64], []float64{1, 2, 0, 0, 0}},
		{"MinTo", MinTo[float64], []float64{1, 2, 3, 2, 1}},
		{"MaxTo", MaxTo[float64], []float64{5, 4, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(a))
			tt.fn(dst, a, b)
			if diff := cmp.Diff(tt.want, dst, approxEqual(1e-15)); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestInPlace(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	Add(dst, []float32{5, 6, 7, 8})
	assert.Equal(t, []float32{6, 8, 10, 12}, dst)

	Sub(dst, []float32{1, 1, 1, 1})
	assert.Equal(t, []float32{5, 7, 9, 11}, dst)

	Mul(dst, []float32{2, 2, 2, 2})
	assert.Equal(t, []float32{10, 14, 18, 22}, dst)

	Div(dst, []float32{2, 2, 2, 2})
	assert.Equal(t, []float32{5, 7, 9, 11}, dst)

	Scale(2, dst)
	assert.Equal(t, []float32{10, 14, 18, 22}, dst)

	AddConst(-10, dst)
	assert.Equal(t, []float32{0, 4, 8, 12}, dst)
}

func TestScalarVariants(t *testing.T) {
	s := []float64{1, 2, 4}
	dst := make([]float64, 3)

	ScaleTo(dst, 3, s)
	assert.Equal(t, []float64{3, 6, 12}, dst)
	AddConstTo(dst, 1, s)
	assert.Equal(t, []float64{2, 3, 5}, dst)
	SubConstTo(dst, s, 1)
	assert.Equal(t, []float64{0, 1, 3}, dst)
	DivConstTo(dst, s, 2)
	assert.Equal(t, []float64{0.5, 1, 2}, dst)
	ConstDivTo(dst, 8, s)
	assert.Equal(t, []float64{8, 4, 2}, dst)
}

func TestUnary(t *testing.T) {
	s := []float64{-2, 0.5, 3}
	dst := make([]float64, 3)

	Neg(dst, s)
	assert.Equal(t, []float64{2, -0.5, -3}, dst)
	Abs(dst, s)
	assert.Equal(t, []float64{2, 0.5, 3}, dst)
	Square(dst, s)
	assert.Equal(t, []float64{4, 0.25, 9}, dst)
	Reciprocal(dst, s)
	assert.Equal(t, []float64{-0.5, 2, 1.0 / 3}, dst)

	CopySignTo(dst, []float64{1, 2, 3}, s)
	assert.Equal(t, []float64{-1, 2, 3}, dst)
}

func TestLengthMismatchUsesMinimum(t *testing.T) {
	dst := []float32{-1, -1, -1, -1}
	AddTo(dst, []float32{1, 2, 3}, []float32{1, 1})
	assert.Equal(t, []float32{2, 3, -1, -1}, dst)

	// Empty operands are a no-op.
	AddTo(dst, nil, []float32{1})
	assert.Equal(t, []float32{2, 3, -1, -1}, dst)
}

func TestIEEEDivision(t *testing.T) {
	dst := make([]float64, 3)
	DivTo(dst, []float64{1, -1, 0}, []float64{0, 0, 0})
	assert.True(t, math.IsInf(dst[0], 1))
	assert.True(t, math.IsInf(dst[1], -1))
	assert.True(t, math.IsNaN(dst[2]))
}

func TestFillRampClip(t *testing.T) {
	dst := make([]float32, 7)
	Fill(dst, 2.5)
	for i, v := range dst {
		require.Equal(t, float32(2.5), v, "dst[%d]", i)
	}
	Zero(dst)
	assert.Equal(t, make([]float32, 7), dst)

	Ramp(dst, 1, 0.5)
	assert.Equal(t, []float32{1, 1.5, 2, 2.5, 3, 3.5, 4}, dst)

	Clip(dst, dst, 2, 3)
	assert.Equal(t, []float32{2, 2, 2, 2.5, 3, 3, 3}, dst)

	before := append([]float32(nil), dst...)
	Clip(dst, []float32{0, 0}, 5, 1)
	assert.Equal(t, before, dst, "an empty range must leave dst unchanged")

	Threshold(dst, []float32{-1, 0, 1}, 0)
	assert.Equal(t, []float32{0, 0, 1}, dst[:3])
	Limit(dst, []float32{-1, 0, 1}, 0)
	assert.Equal(t, []float32{-1, 0, 0}, dst[:3])
}

func TestLerp(t *testing.T) {
	dst := make([]float64, 2)
	Lerp(dst, []float64{0, 10}, []float64{10, 20}, 0.25)
	assert.Equal(t, []float64{2.5, 12.5}, dst)
}

func TestGatherScatterCompress(t *testing.T) {
	src := []float64{10, 20, 30, 40}

	dst := []float64{-1, -1, -1, -1}
	n := Gather(dst, src, []int{3, 0, 9, -1})
	assert.Equal(t, 4, n)
	assert.Equal(t, []float64{40, 10, -1, -1}, dst)

	out := make([]float64, 4)
	Scatter(out, []float64{1, 2, 3}, []int{2, 7, 0})
	assert.Equal(t, []float64{3, 0, 1, 0}, out)

	packed := make([]float64, 4)
	w := Compress(packed, src, []float64{1, 0, math.NaN(), -2})
	assert.Equal(t, 3, w)
	assert.Equal(t, []float64{10, 30, 40, 0}, packed)

	short := make([]float64, 1)
	assert.Equal(t, 1, Compress(short, src, []float64{1, 1, 1, 1}))
}

func TestReverseAndFinite(t *testing.T) {
	s := []float32{1, 2, 3, 4, 5}
	Reverse(s)
	assert.Equal(t, []float32{5, 4, 3, 2, 1}, s)
	assert.True(t, IsFinite(s))
	assert.False(t, IsFinite([]float32{1, float32(math.Inf(1))}))
}

func TestPolyInterpolateDB(t *testing.T) {
	dst := make([]float64, 3)
	Poly(dst, []float64{2, 0, 1}, []float64{0, 1, 2})
	assert.Equal(t, []float64{1, 3, 9}, dst)

	table := []float64{0, 10, 20, 40}
	Interpolate(dst, table, []float64{0.5, 2.25, 7})
	assert.Equal(t, []float64{5, 25, 40}, dst)
	Interpolate(dst, table, []float64{-3, 1, 3})
	assert.Equal(t, []float64{0, 10, 40}, dst)

	PowerToDB(dst, []float64{1, 10, 100}, 1)
	assert.Equal(t, []float64{0, 10, 20}, dst)
	AmplitudeToDB(dst, []float64{1, 10, 0.1}, 1)
	if diff := cmp.Diff([]float64{0, 20, -20}, dst, approxEqual(1e-12)); diff != "" {
		t.Errorf("AmplitudeToDB mismatch (-want +got):\n%s", diff)
	}
}

func TestOperatorSugar(t *testing.T) {
	a := vdsp.Fixed[float64]{1, 2, 3, 4}
	b := vdsp.VectorOf[float64](2, 2, 2)

	assert.Equal(t, []float64{3, 4, 5}, AddElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{-1, 0, 1}, SubtractElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{2, 4, 6}, MultiplyElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{0.5, 1, 1.5}, DivideElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{1, 0, 1}, ModuloElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{1, 4, 9}, PowerElementwise[float64](a, b).Scalars())
	assert.Equal(t, []float64{3, 6, 9, 12}, ScaleElementwise[float64](a, 3).Scalars())

	dst := vdsp.Fixed[float64]{0, 0}
	assert.Equal(t, 2, AddElementwiseInto[float64](dst, a, b))
	assert.Equal(t, []float64{3, 4}, []float64(dst))

	assert.Equal(t, 0, AddElementwise[float64](a, vdsp.Fixed[float64]{}).Len())
}

func TestOperatorSugarInto(t *testing.T) {
	a := vdsp.Fixed[float32]{8, 9}
	b := vdsp.Fixed[float32]{2, 4}
	dst := vdsp.NewVector[float32](2)

	SubtractElementwiseInto[float32](dst, a, b)
	assert.Equal(t, []float32{6, 5}, dst.Scalars())
	MultiplyElementwiseInto[float32](dst, a, b)
	assert.Equal(t, []float32{16, 36}, dst.Scalars())
	DivideElementwiseInto[float32](dst, a, b)
	assert.Equal(t, []float32{4, 2.25}, dst.Scalars())
	ModuloElementwiseInto[float32](dst, a, b)
	assert.Equal(t, []float32{0, 1}, dst.Scalars())
	PowerElementwiseInto[float32](dst, a, b)
	assert.Equal(t, []float32{64, 6561}, dst.Scalars())
}

func TestOperatorSugarComplexFlattens(t *testing.T) {
	a := vdsp.ComplexVectorOf(vdsp.Complex[float32]{Re: 1, Im: 2})
	b := vdsp.ComplexVectorOf(vdsp.Complex[float32]{Re: 3, Im: 4})
	sum := AddElementwise[float32](a, b)
	assert.Equal(t, []float32{4, 6}, sum.Scalars())
}

// TestAddElementwiseProperty checks a .+ b == a[i] + b[i] for random finite
// inputs of equal length.
func TestAddElementwiseProperty(t *testing.T) {
	finite := func(s []float64) []float64 {
		out := s[:0]
		for _, v := range s {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				out = append(out, v)
			}
		}
		return out
	}
	property := func(x, y []float64) bool {
		x, y = finite(x), finite(y)
		n := min(len(x), len(y))
		x, y = x[:n], y[:n]

		got := AddElementwise[float64](vdsp.Fixed[float64](x), vdsp.Fixed[float64](y)).Scalars()
		if len(got) != n {
			return false
		}
		for i := range got {
			if got[i] != x[i]+y[i] {
				return false
			}
		}
		return true
	}
	cfg := &quick.Config{MaxCount: 500, Rand: rand.New(rand.NewSource(1))}
	if err := quick.Check(property, cfg); err != nil {
		t.Error(err)
	}
}

func BenchmarkAddTo(b *testing.B) {
	for _, size := range []int{64, 1024, 16384} {
		x := make([]float32, size)
		y := make([]float32, size)
		dst := make([]float32, size)
		Ramp(x, 0, 1)
		Ramp(y, 1, 1)
		b.Run(vdsp.CurrentName(), func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 3))
			for range b.N {
				AddTo(dst, x, y)
			}
		})
	}
}
