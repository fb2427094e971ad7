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

package matrix

import "github.com/ajroetker/go-vdsp/vdsp"

// Multiply writes the product of the views a (m×k) and b (k×n) into c as an
// m×n row-major matrix. b must have at least k = a.Minor rows; extra rows
// are ignored. It returns false and leaves c untouched when the shapes do
// not line up or c holds fewer than m·n scalars.
func Multiply[T vdsp.Floats](c vdsp.MutableBuffer[T], a, b View[T]) bool {
	m, k, n := a.Major(), a.Minor, b.Minor
	if c == nil || m == 0 || n <= 0 || b.Major() < k || vdsp.VectorCount[T](c) < m*n {
		return false
	}
	vdsp.Gemm(false, false, m, n, k, 1, a.Buf.Scalars(), k, b.Buf.Scalars(), n, 0, c.MutableScalars(), n)
	return true
}

// Transpose writes the transpose of v into dst with rows of v.Major()
// scalars. It returns false if dst is too small.
func Transpose[T vdsp.Floats](dst vdsp.MutableBuffer[T], v View[T]) bool {
	rows := v.Major()
	if dst == nil || rows == 0 || vdsp.VectorCount[T](dst) < rows*v.Minor {
		return false
	}
	vdsp.Transpose(dst.MutableScalars(), v.Buf.Scalars(), rows, v.Minor)
	return true
}
