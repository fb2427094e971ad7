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

// Package matrix interprets flat buffers as row-major matrices and moves
// rectangular regions between them.
//
// A matrix is never stored as its own type. A View pairs any vdsp.Buffer
// with a minor dimension (the row length in scalars) and derives the major
// dimension (the row count) from the buffer's vector count on every call,
// so a buffer that grows between calls simply gains rows.
//
// Region copies never fail. A request larger than what fits in either
// matrix is reduced to the largest block that fits, and a request with
// nothing left after clamping does nothing. The returned Transfer reports
// what actually moved.
package matrix

import "github.com/ajroetker/go-vdsp/vdsp"

// View is the row-major interpretation of Buf with rows of Minor scalars.
type View[T vdsp.Floats] struct {
	Buf   vdsp.Buffer[T]
	Minor int
}

// ViewOf returns a View of buf with the given row length.
func ViewOf[T vdsp.Floats](buf vdsp.Buffer[T], minor int) View[T] {
	return View[T]{Buf: buf, Minor: minor}
}

// Major returns the number of complete rows, or 0 when Minor <= 0.
func (v View[T]) Major() int {
	if v.Minor <= 0 {
		return 0
	}
	return vdsp.VectorCount(v.Buf) / v.Minor
}

// Row returns row i as a sub-slice of the buffer, or nil if i is out of
// range.
func (v View[T]) Row(i int) []T {
	if i < 0 || i >= v.Major() {
		return nil
	}
	return v.Buf.Scalars()[i*v.Minor : (i+1)*v.Minor]
}

// At returns the scalar at row i, column j.
func (v View[T]) At(i, j int) (T, bool) {
	if j < 0 || j >= v.Minor {
		return 0, false
	}
	row := v.Row(i)
	if row == nil {
		return 0, false
	}
	return row[j], true
}
