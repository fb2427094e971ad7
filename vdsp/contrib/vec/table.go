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

// Poly evaluates a polynomial at every x[i]. Coefficients are ordered
// highest power first, so coeffs = {2, 0, 1} is 2x² + 1.
func Poly[T vdsp.Floats](dst, coeffs, x []T) {
	vdsp.Poly(dst, coeffs, x)
}

// Interpolate reads table at fractional positions: for idx[i] = j + f it
// writes table[j] + f*(table[j+1]-table[j]). Positions below 0 or beyond the
// last entry clamp to the first or last entry.
func Interpolate[T vdsp.Floats](dst, table, idx []T) {
	vdsp.Interpolate(dst, table, idx)
}

// PowerToDB converts power values to decibels: 10*log10(s[i]/ref).
func PowerToDB[T vdsp.Floats](dst, s []T, ref T) {
	vdsp.DB(dst, s, ref, vdsp.DBPower)
}

// AmplitudeToDB converts amplitude values to decibels: 20*log10(s[i]/ref).
func AmplitudeToDB[T vdsp.Floats](dst, s []T, ref T) {
	vdsp.DB(dst, s, ref, vdsp.DBAmplitude)
}
