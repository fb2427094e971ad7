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

import (
	"slices"
	"unsafe"
)

// Buffer is the read-only capability: a count of logical elements and a
// contiguous view of the scalars backing them.
//
// Scalars must return exactly Len()*Width() values. Callers must not write
// through the returned slice; use MutableBuffer for that.
type Buffer[T Floats] interface {
	// Len returns the number of logical elements.
	Len() int
	// Width returns the number of scalars per logical element.
	Width() int
	// Scalars returns the flattened scalar view.
	Scalars() []T
}

// MutableBuffer is a Buffer whose scalars may be written.
type MutableBuffer[T Floats] interface {
	Buffer[T]
	MutableScalars() []T
}

// ResizableBuffer is a MutableBuffer that can grow.
type ResizableBuffer[T Floats] interface {
	MutableBuffer[T]
	// AppendScalars appends scalar values. Buffers with Width() > 1 group
	// them into elements; a trailing partial element is zero padded.
	AppendScalars(values ...T)
	// Reserve ensures capacity for at least n more logical elements.
	Reserve(n int)
}

// VectorCount returns the total number of scalars in b, i.e. the count the
// kernels see once composite elements are flattened. A nil buffer has a
// vector count of zero.
func VectorCount[T Floats](b Buffer[T]) int {
	if b == nil {
		return 0
	}
	return b.Len() * b.Width()
}

// Fixed adapts a slice or fixed-size array (via arr[:]) of scalars. Its
// length never changes.
type Fixed[T Floats] []T

func (f Fixed[T]) Len() int            { return len(f) }
func (f Fixed[T]) Width() int          { return ScalarWidth }
func (f Fixed[T]) Scalars() []T        { return f }
func (f Fixed[T]) MutableScalars() []T { return f }

// Raw borrows n scalars of caller-owned memory starting at p. The memory
// must stay valid and must not be moved while the returned buffer is in use.
// A nil pointer or non-positive count yields an empty buffer.
func Raw[T Floats](p unsafe.Pointer, n int) Fixed[T] {
	if p == nil || n <= 0 {
		return nil
	}
	return Fixed[T](unsafe.Slice((*T)(p), n))
}

// Vector is a growable buffer of scalars.
type Vector[T Floats] struct {
	data []T
}

// NewVector returns a zeroed vector of n scalars.
func NewVector[T Floats](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, max(n, 0))}
}

// VectorOf returns a vector holding a copy of values.
func VectorOf[T Floats](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// Wrap returns a vector that uses s as its storage without copying.
func Wrap[T Floats](s []T) *Vector[T] {
	return &Vector[T]{data: s}
}

func (v *Vector[T]) Len() int            { return len(v.data) }
func (v *Vector[T]) Width() int          { return ScalarWidth }
func (v *Vector[T]) Scalars() []T        { return v.data }
func (v *Vector[T]) MutableScalars() []T { return v.data }

// Cap returns the capacity in scalars.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// AppendScalars appends values to the vector.
func (v *Vector[T]) AppendScalars(values ...T) {
	v.data = append(v.data, values...)
}

// Reserve grows the capacity so that n more scalars fit without reallocation.
func (v *Vector[T]) Reserve(n int) {
	if n > 0 {
		v.data = slices.Grow(v.data, n)
	}
}

// ComplexVector is a growable buffer of interleaved complex numbers.
type ComplexVector[T Floats] struct {
	data []Complex[T]
}

// NewComplexVector returns a zeroed vector of n complex elements.
func NewComplexVector[T Floats](n int) *ComplexVector[T] {
	return &ComplexVector[T]{data: make([]Complex[T], max(n, 0))}
}

// ComplexVectorOf returns a vector holding a copy of values.
func ComplexVectorOf[T Floats](values ...Complex[T]) *ComplexVector[T] {
	return &ComplexVector[T]{data: slices.Clone(values)}
}

func (v *ComplexVector[T]) Len() int   { return len(v.data) }
func (v *ComplexVector[T]) Width() int { return ComplexWidth }

// Elements returns the complex elements.
func (v *ComplexVector[T]) Elements() []Complex[T] { return v.data }

// Scalars returns the elements flattened as [re0, im0, re1, im1, ...].
func (v *ComplexVector[T]) Scalars() []T { return flattenComplex(v.data) }

// MutableScalars is Scalars for writing.
func (v *ComplexVector[T]) MutableScalars() []T { return flattenComplex(v.data) }

// Append appends complex elements.
func (v *ComplexVector[T]) Append(values ...Complex[T]) {
	v.data = append(v.data, values...)
}

// AppendScalars appends (re, im) pairs. An odd trailing value becomes the
// real part of an element with a zero imaginary part.
func (v *ComplexVector[T]) AppendScalars(values ...T) {
	v.Reserve((len(values) + 1) / 2)
	for i := 0; i < len(values); i += 2 {
		c := Complex[T]{Re: values[i]}
		if i+1 < len(values) {
			c.Im = values[i+1]
		}
		v.data = append(v.data, c)
	}
}

// Reserve grows the capacity so that n more elements fit without reallocation.
func (v *ComplexVector[T]) Reserve(n int) {
	if n > 0 {
		v.data = slices.Grow(v.data, n)
	}
}

func flattenComplex[T Floats](c []Complex[T]) []T {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(c))), len(c)*ComplexWidth)
}

// ReadOnly hides the mutable capabilities of a buffer. It cannot stop a
// caller from writing through Scalars, but it keeps the buffer from being
// passed where a MutableBuffer is required.
type ReadOnly[T Floats] struct {
	b Buffer[T]
}

// AsReadOnly wraps b.
func AsReadOnly[T Floats](b Buffer[T]) ReadOnly[T] {
	return ReadOnly[T]{b: b}
}

func (r ReadOnly[T]) Len() int {
	if r.b == nil {
		return 0
	}
	return r.b.Len()
}

func (r ReadOnly[T]) Width() int {
	if r.b == nil {
		return ScalarWidth
	}
	return r.b.Width()
}

func (r ReadOnly[T]) Scalars() []T {
	if r.b == nil {
		return nil
	}
	return r.b.Scalars()
}

var (
	_ MutableBuffer[float32]   = Fixed[float32](nil)
	_ ResizableBuffer[float64] = (*Vector[float64])(nil)
	_ ResizableBuffer[float32] = (*ComplexVector[float32])(nil)
	_ Buffer[float64]          = ReadOnly[float64]{}
)
