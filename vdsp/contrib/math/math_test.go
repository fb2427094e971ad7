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

package math

import (
	stdmath "math"
	"testing"
)

var unaryCases = []struct {
	name   string
	fn     func(dst, x []float64)
	fn32   func(dst, x []float32)
	ref    func(float64) float64
	inputs []float64
}{
	{"Sqrt", Sqrt[float64], Sqrt[float32], stdmath.Sqrt, []float64{0, 0.25, 1, 2, 100}},
	{"Exp", Exp[float64], Exp[float32], stdmath.Exp, []float64{-5, -1, 0, 0.5, 1, 10}},
	{"Exp2", Exp2[float64], Exp2[float32], stdmath.Exp2, []float64{-3, 0, 1, 10}},
	{"Expm1", Expm1[float64], Expm1[float32], stdmath.Expm1, []float64{-1e-8, 0, 1e-8, 1}},
	{"Log", Log[float64], Log[float32], stdmath.Log, []float64{0.1, 1, stdmath.E, 100}},
	{"Log2", Log2[float64], Log2[float32], stdmath.Log2, []float64{0.5, 1, 2, 1024}},
	{"Log10", Log10[float64], Log10[float32], stdmath.Log10, []float64{0.01, 1, 10, 1000}},
	{"Log1p", Log1p[float64], Log1p[float32], stdmath.Log1p, []float64{-0.5, 0, 1e-9, 3}},
	{"Sin", Sin[float64], Sin[float32], stdmath.Sin, []float64{-stdmath.Pi, -1, 0, 0.5, 2}},
	{"Cos", Cos[float64], Cos[float32], stdmath.Cos, []float64{-stdmath.Pi, -1, 0, 0.5, 2}},
	{"Tan", Tan[float64], Tan[float32], stdmath.Tan, []float64{-1, 0, 0.5, 1}},
	{"Asin", Asin[float64], Asin[float32], stdmath.Asin, []float64{-1, -0.5, 0, 0.5, 1}},
	{"Acos", Acos[float64], Acos[float32], stdmath.Acos, []float64{-1, -0.5, 0, 0.5, 1}},
	{"Atan", Atan[float64], Atan[float32], stdmath.Atan, []float64{-10, -1, 0, 1, 10}},
	{"Sinh", Sinh[float64], Sinh[float32], stdmath.Sinh, []float64{-2, 0, 0.5, 2}},
	{"Cosh", Cosh[float64], Cosh[float32], stdmath.Cosh, []float64{-2, 0, 0.5, 2}},
	{"Tanh", Tanh[float64], Tanh[float32], stdmath.Tanh, []float64{-5, -0.5, 0, 0.5, 5}},
	{"Asinh", Asinh[float64], Asinh[float32], stdmath.Asinh, []float64{-2, 0, 0.5, 2}},
	{"Acosh", Acosh[float64], Acosh[float32], stdmath.Acosh, []float64{1, 1.5, 2, 10}},
	{"Atanh", Atanh[float64], Atanh[float32], stdmath.Atanh, []float64{-0.9, 0, 0.5, 0.9}},
	{"Ceil", Ceil[float64], Ceil[float32], stdmath.Ceil, []float64{-1.5, -0.5, 0, 0.5, 1.5}},
	{"Floor", Floor[float64], Floor[float32], stdmath.Floor, []float64{-1.5, -0.5, 0, 0.5, 1.5}},
	{"Trunc", Trunc[float64], Trunc[float32], stdmath.Trunc, []float64{-1.5, -0.5, 0, 0.5, 1.5}},
	{"Round", Round[float64], Round[float32], stdmath.RoundToEven, []float64{-1.5, -0.5, 0.5, 1.5, 2.5}},
	{"Erf", Erf[float64], Erf[float32], stdmath.Erf, []float64{-2, -0.5, 0, 0.5, 2}},
	{"Rsqrt", Rsqrt[float64], Rsqrt[float32], func(x float64) float64 { return 1 / stdmath.Sqrt(x) }, []float64{0.25, 1, 4, 100}},
	{"Sigmoid", Sigmoid[float64], Sigmoid[float32], func(x float64) float64 { return 1 / (1 + stdmath.Exp(-x)) }, []float64{-10, -1, 0, 1, 10}},
}

func closeEnough(got, want, tol float64) bool {
	if stdmath.IsNaN(want) {
		return stdmath.IsNaN(got)
	}
	if stdmath.IsInf(want, 0) {
		return got == want
	}
	return stdmath.Abs(got-want) <= tol*max(1, stdmath.Abs(want))
}

func TestUnaryFloat64(t *testing.T) {
	for _, tc := range unaryCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]float64, len(tc.inputs))
			tc.fn(dst, tc.inputs)
			for i, x := range tc.inputs {
				if want := tc.ref(x); !closeEnough(dst[i], want, 1e-12) {
					t.Errorf("%s(%v) = %v, want %v", tc.name, x, dst[i], want)
				}
			}
		})
	}
}

func TestUnaryFloat32(t *testing.T) {
	for _, tc := range unaryCases {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]float32, len(tc.inputs))
			for i, x := range tc.inputs {
				in[i] = float32(x)
			}
			dst := make([]float32, len(in))
			tc.fn32(dst, in)
			for i, x := range in {
				want := tc.ref(float64(x))
				if !closeEnough(float64(dst[i]), want, 1e-5) {
					t.Errorf("%s(%v) = %v, want %v", tc.name, x, dst[i], want)
				}
			}
		})
	}
}

func TestDomainErrors(t *testing.T) {
	dst := make([]float64, 3)
	Log(dst, []float64{-1, 0, stdmath.Inf(1)})
	if !stdmath.IsNaN(dst[0]) {
		t.Errorf("Log(-1) = %v, want NaN", dst[0])
	}
	if !stdmath.IsInf(dst[1], -1) {
		t.Errorf("Log(0) = %v, want -Inf", dst[1])
	}
	if !stdmath.IsInf(dst[2], 1) {
		t.Errorf("Log(+Inf) = %v, want +Inf", dst[2])
	}

	Sqrt(dst[:1], []float64{-4})
	if !stdmath.IsNaN(dst[0]) {
		t.Errorf("Sqrt(-4) = %v, want NaN", dst[0])
	}
}

func TestInPlace(t *testing.T) {
	x := []float32{0, 1, 4, 9}
	Sqrt(x, x)
	for i, want := range []float32{0, 1, 2, 3} {
		if x[i] != want {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want)
		}
	}
}

func TestBinary(t *testing.T) {
	dst := make([]float64, 4)
	Pow(dst, []float64{2, 3, 4, 9}, []float64{10, 2, 0.5, -0.5})
	for i, want := range []float64{1024, 9, 2, 1.0 / 3} {
		if !closeEnough(dst[i], want, 1e-15) {
			t.Errorf("Pow[%d] = %v, want %v", i, dst[i], want)
		}
	}

	Atan2(dst, []float64{1, 1, -1, 0}, []float64{1, -1, -1, 1})
	for i, want := range []float64{stdmath.Pi / 4, 3 * stdmath.Pi / 4, -3 * stdmath.Pi / 4, 0} {
		if !closeEnough(dst[i], want, 1e-15) {
			t.Errorf("Atan2[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSinCos(t *testing.T) {
	x := []float64{0, stdmath.Pi / 2, stdmath.Pi}
	s := make([]float64, 3)
	c := make([]float64, 3)
	SinCos(s, c, x)
	for i := range x {
		if !closeEnough(s[i], stdmath.Sin(x[i]), 1e-15) || !closeEnough(c[i], stdmath.Cos(x[i]), 1e-15) {
			t.Errorf("SinCos(%v) = (%v, %v)", x[i], s[i], c[i])
		}
	}
}

func TestShortDestination(t *testing.T) {
	dst := make([]float64, 2)
	Exp(dst, []float64{0, 0, 0, 0})
	if dst[0] != 1 || dst[1] != 1 {
		t.Errorf("Exp into short dst = %v", dst)
	}
	// Nothing to do; must not panic.
	Exp(nil, []float64{1})
	Exp(dst, nil)
}

func BenchmarkExp(b *testing.B) {
	x := make([]float32, 4096)
	for i := range x {
		x[i] = float32(i%20) - 10
	}
	dst := make([]float32, len(x))
	b.SetBytes(int64(len(x) * 4))
	for range b.N {
		Exp(dst, x)
	}
}
