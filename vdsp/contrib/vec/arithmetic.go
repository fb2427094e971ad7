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

// Package vec provides element-wise vector arithmetic on float32 and float64
// slices.
//
// Operations come in two variants:
//   - In-place: modify the destination slice directly (e.g., Add)
//   - To: write results to a separate destination slice (e.g., AddTo)
//
// If the slices have different lengths, every operation uses the minimum
// length and leaves the rest of dst untouched. The arithmetic itself runs on
// the active vdsp backend.
package vec

import "github.com/ajroetker/go-vdsp/vdsp"

// Add performs in-place element-wise addition: dst[i] += s[i].
//
// Example:
//
//	dst := []float32{1, 2, 3, 4}
//	s := []float32{5, 6, 7, 8}
//	Add(dst, s)  // dst is now {6, 8, 10, 12}
func Add[T vdsp.Floats](dst, s []T) {
	vdsp.Binary(vdsp.OpAdd, dst, dst, s)
}

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
func AddTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpAdd, dst, a, b)
}

// Sub performs in-place element-wise subtraction: dst[i] -= s[i].
func Sub[T vdsp.Floats](dst, s []T) {
	vdsp.Binary(vdsp.OpSub, dst, dst, s)
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
func SubTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpSub, dst, a, b)
}

// Mul performs in-place element-wise multiplication: dst[i] *= s[i].
func Mul[T vdsp.Floats](dst, s []T) {
	vdsp.Binary(vdsp.OpMul, dst, dst, s)
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpMul, dst, a, b)
}

// Div performs in-place element-wise division: dst[i] /= s[i].
// Division by zero follows IEEE-754 (±Inf or NaN).
func Div[T vdsp.Floats](dst, s []T) {
	vdsp.Binary(vdsp.OpDiv, dst, dst, s)
}

// DivTo performs element-wise division: dst[i] = a[i] / b[i].
func DivTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpDiv, dst, a, b)
}

// ModTo writes the floating-point remainder of a[i]/b[i], with the sign of
// a[i] (C fmod semantics).
func ModTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpMod, dst, a, b)
}

// MinTo writes the element-wise minimum.
func MinTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpMin, dst, a, b)
}

// MaxTo writes the element-wise maximum.
func MaxTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpMax, dst, a, b)
}

// CopySignTo writes the magnitude of a[i] with the sign of b[i].
func CopySignTo[T vdsp.Floats](dst, a, b []T) {
	vdsp.Binary(vdsp.OpCopySign, dst, a, b)
}

// Scale performs in-place multiplication by a constant: dst[i] *= c.
func Scale[T vdsp.Floats](c T, dst []T) {
	vdsp.Scalar(vdsp.OpMulScalar, dst, dst, c)
}

// ScaleTo performs multiplication by a constant: dst[i] = c * s[i].
func ScaleTo[T vdsp.Floats](dst []T, c T, s []T) {
	vdsp.Scalar(vdsp.OpMulScalar, dst, s, c)
}

// AddConst performs in-place addition of a constant: dst[i] += c.
func AddConst[T vdsp.Floats](c T, dst []T) {
	vdsp.Scalar(vdsp.OpAddScalar, dst, dst, c)
}

// AddConstTo performs addition of a constant: dst[i] = s[i] + c.
func AddConstTo[T vdsp.Floats](dst []T, c T, s []T) {
	vdsp.Scalar(vdsp.OpAddScalar, dst, s, c)
}

// SubConstTo writes dst[i] = s[i] - c.
func SubConstTo[T vdsp.Floats](dst []T, s []T, c T) {
	vdsp.Scalar(vdsp.OpSubScalar, dst, s, c)
}

// DivConstTo writes dst[i] = s[i] / c.
func DivConstTo[T vdsp.Floats](dst []T, s []T, c T) {
	vdsp.Scalar(vdsp.OpDivScalar, dst, s, c)
}

// ConstDivTo writes dst[i] = c / s[i].
func ConstDivTo[T vdsp.Floats](dst []T, c T, s []T) {
	vdsp.Scalar(vdsp.OpScalarDiv, dst, s, c)
}

// Neg writes dst[i] = -s[i].
func Neg[T vdsp.Floats](dst, s []T) {
	vdsp.Unary(vdsp.OpNeg, dst, s)
}

// Abs writes dst[i] = |s[i]|.
func Abs[T vdsp.Floats](dst, s []T) {
	vdsp.Unary(vdsp.OpAbs, dst, s)
}

// Square writes dst[i] = s[i]*s[i].
func Square[T vdsp.Floats](dst, s []T) {
	vdsp.Unary(vdsp.OpSquare, dst, s)
}

// Reciprocal writes dst[i] = 1/s[i].
func Reciprocal[T vdsp.Floats](dst, s []T) {
	vdsp.Unary(vdsp.OpReciprocal, dst, s)
}
