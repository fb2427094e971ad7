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

// Offset is a (row, column) position inside a matrix.
type Offset struct {
	Major, Minor int
}

// Region is a block of Major rows by Minor columns whose top-left corner is
// at (MajorOffset, MinorOffset).
type Region struct {
	MajorOffset int
	MinorOffset int
	Major       int
	Minor       int
}

// Transfer is the block size a copy actually moved. Clamped is set when it
// is smaller than requested. The zero Transfer means nothing moved.
type Transfer struct {
	Major   int
	Minor   int
	Clamped bool
}

// Empty reports whether the transfer moved nothing.
func (t Transfer) Empty() bool {
	return t.Major <= 0 || t.Minor <= 0
}

// Clamp returns the block that a copy of major×minor from src at srcAt to
// dst at dstAt can move. Each dimension is the smallest of the request, the
// room left in src past its offset and the room left in dst past its
// offset. Negative offsets, non-positive minors, or nothing left after
// clamping give the zero Transfer.
func Clamp[T vdsp.Floats](dst View[T], dstAt Offset, src View[T], srcAt Offset, major, minor int) Transfer {
	if dst.Minor <= 0 || src.Minor <= 0 {
		return Transfer{}
	}
	if dstAt.Major < 0 || dstAt.Minor < 0 || srcAt.Major < 0 || srcAt.Minor < 0 {
		return Transfer{}
	}
	moveMinor := min(minor, src.Minor-srcAt.Minor, dst.Minor-dstAt.Minor)
	moveMajor := min(major, src.Major()-srcAt.Major, dst.Major()-dstAt.Major)
	if moveMinor <= 0 || moveMajor <= 0 {
		return Transfer{}
	}
	return Transfer{
		Major:   moveMajor,
		Minor:   moveMinor,
		Clamped: moveMajor < major || moveMinor < minor,
	}
}

// Copy moves a major×minor block from src at srcAt into dst at dstAt, after
// clamping it with Clamp. Rows are strided by each buffer's own minor.
// Overlapping source and destination are handled.
func Copy[T vdsp.Floats](dst vdsp.MutableBuffer[T], dstMinor int, dstAt Offset, src vdsp.Buffer[T], srcMinor int, srcAt Offset, major, minor int) Transfer {
	if dst == nil || src == nil {
		return Transfer{}
	}
	t := Clamp(ViewOf[T](dst, dstMinor), dstAt, ViewOf(src, srcMinor), srcAt, major, minor)
	if t.Empty() {
		return Transfer{}
	}
	dstStart := dstAt.Major*dstMinor + dstAt.Minor
	srcStart := srcAt.Major*srcMinor + srcAt.Minor
	vdsp.Copy2D(dst.MutableScalars()[dstStart:], dstMinor, src.Scalars()[srcStart:], srcMinor, t.Major, t.Minor)
	return t
}

// Assign writes src, starting from its origin, into the region of dst.
//
//	dst (2x3), src (5x3), Region{Major: 10, Minor: 10}  // moves 2x3
func Assign[T vdsp.Floats](dst vdsp.MutableBuffer[T], dstMinor int, src vdsp.Buffer[T], srcMinor int, r Region) Transfer {
	return Copy(dst, dstMinor, Offset{r.MajorOffset, r.MinorOffset}, src, srcMinor, Offset{}, r.Major, r.Minor)
}

// Extract reads the region of src into dst, starting at dst's origin.
func Extract[T vdsp.Floats](dst vdsp.MutableBuffer[T], dstMinor int, src vdsp.Buffer[T], srcMinor int, r Region) Transfer {
	return Copy(dst, dstMinor, Offset{}, src, srcMinor, Offset{r.MajorOffset, r.MinorOffset}, r.Major, r.Minor)
}
