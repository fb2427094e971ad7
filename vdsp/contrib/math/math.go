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


// Package math provides element-wise transcendental and rounding functions
// over float32 and float64 slices.
//
// The unary functions have the shape F(dst, x) and write F(x[i]) to dst[i] for
// the first min(len(dst), len(x)) elements. dst and x may be the same slice.
// Domain errors follow IEEE 754: Log of a negative value gives NaN, Log(0)
// gives -Inf, and so on.
//
// Exponential and logarithmic:
//   - Exp, Exp2, Expm1
//   - Log, Log2, Log10, Log1p
//
// Trigonometric and hyperbolic:
//   - Sin, Cos, Tan, Asin, Acos, Atan, Atan2
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Power and rounding:
//   - Sqrt, Rsqrt, Pow
//   - Ceil, Floor, Trunc, Round
//
// Activation:
//   - Sigmoid, Erf
//
// The work runs on the active vdsp backend, so the Accelerate backend on
// darwin replaces these with vForce calls.
package math

import "github.com/ajroetker/go-vdsp/vdsp"

// Sqrt writes √x for each element of x.
func Sqrt[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpSqrt, dst, x)
}

// Rsqrt writes 1/√x for each element of x.
func Rsqrt[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpRsqrt, dst, x)
}

// Exp writes e^x for each element of x.
func Exp[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpExp, dst, x)
}

// Exp2 writes 2^x for each element of x.
func Exp2[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpExp2, dst, x)
}

// Expm1 writes e^x - 1, accurate near zero for each element of x.
func Expm1[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpExpm1, dst, x)
}

// Log writes ln(x) for each element of x.
func Log[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpLog, dst, x)
}

// Log2 writes log₂(x) for each element of x.
func Log2[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpLog2, dst, x)
}

// Log10 writes log₁₀(x) for each element of x.
func Log10[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpLog10, dst, x)
}

// Log1p writes ln(1 + x), accurate near zero for each element of x.
func Log1p[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpLog1p, dst, x)
}

// Sin writes sin(x) for each element of x.
func Sin[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpSin, dst, x)
}

// Cos writes cos(x) for each element of x.
func Cos[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpCos, dst, x)
}

// Tan writes tan(x) for each element of x.
func Tan[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpTan, dst, x)
}

// Asin writes asin(x) for each element of x.
func Asin[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAsin, dst, x)
}

// Acos writes acos(x) for each element of x.
func Acos[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAcos, dst, x)
}

// Atan writes atan(x) for each element of x.
func Atan[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAtan, dst, x)
}

// Sinh writes sinh(x) for each element of x.
func Sinh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpSinh, dst, x)
}

// Cosh writes cosh(x) for each element of x.
func Cosh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpCosh, dst, x)
}

// Tanh writes tanh(x) for each element of x.
func Tanh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpTanh, dst, x)
}

// Asinh writes asinh(x) for each element of x.
func Asinh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAsinh, dst, x)
}

// Acosh writes acosh(x) for each element of x.
func Acosh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAcosh, dst, x)
}

// Atanh writes atanh(x) for each element of x.
func Atanh[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpAtanh, dst, x)
}

// Ceil writes the least integer ≥ x for each element of x.
func Ceil[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpCeil, dst, x)
}

// Floor writes the greatest integer ≤ x for each element of x.
func Floor[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpFloor, dst, x)
}

// Trunc writes x with its fraction dropped for each element of x.
func Trunc[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpTrunc, dst, x)
}

// Round writes x rounded half to even for each element of x.
func Round[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpRound, dst, x)
}

// Sigmoid writes 1/(1 + e^-x) for each element of x.
func Sigmoid[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpSigmoid, dst, x)
}

// Erf writes the error function of x for each element of x.
func Erf[T vdsp.Floats](dst, x []T) {
	vdsp.Unary(vdsp.OpErf, dst, x)
}

// Pow writes x[i] raised to y[i].
func Pow[T vdsp.Floats](dst, x, y []T) {
	vdsp.Binary(vdsp.OpPow, dst, x, y)
}

// Atan2 writes the angle of the point (x[i], y[i]), in the range [-π, π].
func Atan2[T vdsp.Floats](dst, y, x []T) {
	vdsp.Binary(vdsp.OpAtan2, dst, y, x)
}

// SinCos writes sin(x) to sin and cos(x) to cos.
func SinCos[T vdsp.Floats](sin, cos, x []T) {
	vdsp.Unary(vdsp.OpSin, sin, x)
	vdsp.Unary(vdsp.OpCos, cos, x)
}
