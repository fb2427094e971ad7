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

// This file and the other portable_*.go files implement the pure Go
// backend. It handles every operation, which is what lets other backends
// decline requests. Scalar math goes through float64, matching the
// precision of the standard library.

func portableBackend() *Backend {
	return &Backend{
		Name:     PortableName,
		Priority: math.MinInt,
		Float32:  portableKernels[float32](),
		Float64:  portableKernels[float64](),
	}
}

func portableKernels[T Floats]() Kernels[T] {
	return Kernels[T]{
		Elementwise: portableElementwise[T]{},
		Reduce:      portableReduce[T]{},
		Sort:        portableSort[T]{},
		Matrix:      portableMatrix[T]{},
		Signal:      portableSignal[T]{},
	}
}

type portableElementwise[T Floats] struct{}

func (portableElementwise[T]) Binary(op BinaryOp, dst, a, b []T) bool {
	switch op {
	case OpAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case OpSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case OpMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case OpDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	case OpMod:
		apply2(dst, a, b, math.Mod)
	case OpPow:
		apply2(dst, a, b, math.Pow)
	case OpAtan2:
		apply2(dst, a, b, math.Atan2)
	case OpMin:
		apply2(dst, a, b, math.Min)
	case OpMax:
		apply2(dst, a, b, math.Max)
	case OpCopySign:
		apply2(dst, a, b, math.Copysign)
	default:
		return false
	}
	return true
}

func (portableElementwise[T]) Scalar(op ScalarOp, dst, a []T, s T) bool {
	switch op {
	case OpAddScalar:
		for i := range dst {
			dst[i] = a[i] + s
		}
	case OpSubScalar:
		for i := range dst {
			dst[i] = a[i] - s
		}
	case OpMulScalar:
		for i := range dst {
			dst[i] = a[i] * s
		}
	case OpDivScalar:
		for i := range dst {
			dst[i] = a[i] / s
		}
	case OpScalarDiv:
		for i := range dst {
			dst[i] = s / a[i]
		}
	case OpMinScalar:
		for i := range dst {
			dst[i] = T(math.Min(float64(a[i]), float64(s)))
		}
	case OpMaxScalar:
		for i := range dst {
			dst[i] = T(math.Max(float64(a[i]), float64(s)))
		}
	default:
		return false
	}
	return true
}

func (portableElementwise[T]) Unary(op UnaryOp, dst, a []T) bool {
	switch op {
	case OpNeg:
		for i := range dst {
			dst[i] = -a[i]
		}
		return true
	case OpAbs:
		for i := range dst {
			dst[i] = T(math.Abs(float64(a[i])))
		}
		return true
	case OpSquare:
		for i := range dst {
			dst[i] = a[i] * a[i]
		}
		return true
	case OpReciprocal:
		for i := range dst {
			dst[i] = 1 / a[i]
		}
		return true
	}
	fn, ok := unaryScalar[op]
	if !ok {
		return false
	}
	apply1(dst, a, fn)
	return true
}

func (portableElementwise[T]) Fill(dst []T, v T) bool {
	// Doubling copy leans on the runtime's memmove.
	dst[0] = v
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
	return true
}

func (portableElementwise[T]) Ramp(dst []T, start, step T) bool {
	for i := range dst {
		dst[i] = start + T(i)*step
	}
	return true
}

func (portableElementwise[T]) Clip(dst, a []T, lo, hi T) bool {
	for i, v := range a {
		switch {
		case v < lo:
			dst[i] = lo
		case v > hi:
			dst[i] = hi
		default:
			dst[i] = v
		}
	}
	return true
}

func (portableElementwise[T]) Lerp(dst, a, b []T, t T) bool {
	for i := range dst {
		dst[i] = a[i] + t*(b[i]-a[i])
	}
	return true
}

var unaryScalar = map[UnaryOp]func(float64) float64{
	OpSqrt:    math.Sqrt,
	OpRsqrt:   func(x float64) float64 { return 1 / math.Sqrt(x) },
	OpExp:     math.Exp,
	OpExp2:    math.Exp2,
	OpExpm1:   math.Expm1,
	OpLog:     math.Log,
	OpLog2:    math.Log2,
	OpLog10:   math.Log10,
	OpLog1p:   math.Log1p,
	OpSin:     math.Sin,
	OpCos:     math.Cos,
	OpTan:     math.Tan,
	OpAsin:    math.Asin,
	OpAcos:    math.Acos,
	OpAtan:    math.Atan,
	OpSinh:    math.Sinh,
	OpCosh:    math.Cosh,
	OpTanh:    math.Tanh,
	OpAsinh:   math.Asinh,
	OpAcosh:   math.Acosh,
	OpAtanh:   math.Atanh,
	OpCeil:    math.Ceil,
	OpFloor:   math.Floor,
	OpTrunc:   math.Trunc,
	OpRound:   math.RoundToEven,
	OpSigmoid: func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
	OpErf:     math.Erf,
}

func apply1[T Floats](dst, a []T, fn func(float64) float64) {
	for i := range dst {
		dst[i] = T(fn(float64(a[i])))
	}
}

func apply2[T Floats](dst, a, b []T, fn func(float64, float64) float64) {
	for i := range dst {
		dst[i] = T(fn(float64(a[i]), float64(b[i])))
	}
}
