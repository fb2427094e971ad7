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

// Package vdsp treats contiguous numeric memory (slices, fixed arrays and
// caller-owned raw memory) uniformly as vectors and row-major matrices, and
// routes every numeric kernel to a pluggable vectorized backend.
//
// The package itself only owns bookkeeping: the buffer capability
// interfaces, length clamping, and backend selection. Kernels live in
// backends. A pure-Go portable backend is always registered; accelerated
// backends register themselves when their package is imported:
//
//	import (
//		"github.com/ajroetker/go-vdsp/vdsp/contrib/vec"
//		_ "github.com/ajroetker/go-vdsp/vdsp/backend/gonum"
//	)
//
//	vec.AddTo(dst, a, b)
//
// Numeric operations never return errors. Mismatched lengths are clamped to
// the shortest operand and empty or undersized inputs leave the destination
// untouched.
package vdsp

import "unsafe"

// Floats is the constraint for the scalar types backends understand.
// Backends are selected per concrete scalar type, so derived types are not
// admitted.
type Floats interface {
	float32 | float64
}

// Precision tags the scalar type of a buffer.
type Precision int

const (
	// Single is IEEE-754 binary32.
	Single Precision = iota
	// Double is IEEE-754 binary64.
	Double
)

// String returns "single" or "double".
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Size returns the size in bytes of one scalar of this precision.
func (p Precision) Size() int {
	if p == Double {
		return 8
	}
	return 4
}

// PrecisionOf returns the precision tag of T.
func PrecisionOf[T Floats]() Precision {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		return Double
	}
	return Single
}

// Complex is an interleaved complex number: two scalars per element.
// Its memory layout is exactly [Re, Im], so a []Complex[T] can be viewed
// as a []T of twice the length.
type Complex[T Floats] struct {
	Re, Im T
}

// Scalar widths of the element kinds known to the package.
const (
	ScalarWidth  = 1
	ComplexWidth = 2
)
