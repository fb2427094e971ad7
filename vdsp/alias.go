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

import "unsafe"

// Overlaps reports whether a and b share any memory.
func Overlaps[T Floats](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	pa, ea := bounds(a)
	pb, eb := bounds(b)
	return pa < eb && pb < ea
}

// StartsAfter reports whether dst begins at a higher address than src.
// Row-by-row copies between overlapping regions must run backwards when
// it does.
func StartsAfter[T Floats](dst, src []T) bool {
	if len(dst) == 0 || len(src) == 0 {
		return false
	}
	pd, _ := bounds(dst)
	ps, _ := bounds(src)
	return pd > ps
}

func bounds[T Floats](s []T) (start, end uintptr) {
	var zero T
	start = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return start, start + uintptr(len(s))*unsafe.Sizeof(zero)
}
