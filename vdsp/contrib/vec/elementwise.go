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

import "github.com/ajroetker/go-vdsp/vdsp"

// The Elementwise functions are the named forms of the .+ .- .* ./ .% .^
// operators. They work on any vdsp.Buffer and treat composite elements as
// their flattened scalars, so adding two complex buffers adds real and
// imaginary parts, while multiplying them multiplies parts pairwise (it is
// not a complex product).
//
// The plain form allocates a result as long as the shorter operand's
// scalars. The Into form writes into an existing buffer and returns the
// number of scalars written.

// AddElementwise returns a[i] + b[i].
func AddElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpAdd, a, b)
}

// SubtractElementwise returns a[i] - b[i].
func SubtractElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpSub, a, b)
}

// MultiplyElementwise returns a[i] * b[i].
func MultiplyElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpMul, a, b)
}

// DivideElementwise returns a[i] / b[i].
func DivideElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpDiv, a, b)
}

// ModuloElementwise returns fmod(a[i], b[i]).
func ModuloElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpMod, a, b)
}

// PowerElementwise returns a[i] raised to b[i].
func PowerElementwise[T vdsp.Floats](a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	return binaryNew(vdsp.OpPow, a, b)
}

// AddElementwiseInto writes a[i] + b[i] into dst.
func AddElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpAdd, dst, a, b)
}

// SubtractElementwiseInto writes a[i] - b[i] into dst.
func SubtractElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpSub, dst, a, b)
}

// MultiplyElementwiseInto writes a[i] * b[i] into dst.
func MultiplyElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpMul, dst, a, b)
}

// DivideElementwiseInto writes a[i] / b[i] into dst.
func DivideElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpDiv, dst, a, b)
}

// ModuloElementwiseInto writes fmod(a[i], b[i]) into dst.
func ModuloElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpMod, dst, a, b)
}

// PowerElementwiseInto writes a[i] raised to b[i] into dst.
func PowerElementwiseInto[T vdsp.Floats](dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	return binaryInto(vdsp.OpPow, dst, a, b)
}

// ScaleElementwise returns c * a[i].
func ScaleElementwise[T vdsp.Floats](a vdsp.Buffer[T], c T) *vdsp.Vector[T] {
	out := vdsp.NewVector[T](vdsp.VectorCount(a))
	if out.Len() > 0 {
		vdsp.Scalar(vdsp.OpMulScalar, out.MutableScalars(), a.Scalars(), c)
	}
	return out
}

func binaryNew[T vdsp.Floats](op vdsp.BinaryOp, a, b vdsp.Buffer[T]) *vdsp.Vector[T] {
	out := vdsp.NewVector[T](min(vdsp.VectorCount(a), vdsp.VectorCount(b)))
	if out.Len() > 0 {
		vdsp.Binary(op, out.MutableScalars(), a.Scalars(), b.Scalars())
	}
	return out
}

func binaryInto[T vdsp.Floats](op vdsp.BinaryOp, dst vdsp.MutableBuffer[T], a, b vdsp.Buffer[T]) int {
	n := min(vdsp.VectorCount[T](dst), vdsp.VectorCount(a), vdsp.VectorCount(b))
	if n == 0 {
		return 0
	}
	vdsp.Binary(op, dst.MutableScalars()[:n], a.Scalars(), b.Scalars())
	return n
}
