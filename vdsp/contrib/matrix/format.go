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

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ajroetker/go-vdsp/vdsp"
)

// DefaultWidth is the field width Format uses when given a width <= 0.
const DefaultWidth = 8

// Format renders the rows of buf, minor scalars each, one row per line with
// every value right-aligned in a field of width characters.
//
// When every finite value is a whole number they print without decimals.
// Otherwise the precision is whatever the field has left after the widest
// integer part, its sign and the decimal point, kept between 1 and 6. If
// the integer part alone does not fit, values switch to exponent notation.
func Format[T vdsp.Floats](buf vdsp.Buffer[T], minor, width int) string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = Fprint(&sb, buf, minor, width)
	return sb.String()
}

// Fprint writes Format's output to w.
func Fprint[T vdsp.Floats](w io.Writer, buf vdsp.Buffer[T], minor, width int) error {
	v := ViewOf(buf, minor)
	rows := v.Major()
	if rows == 0 {
		return nil
	}
	if width <= 0 {
		width = DefaultWidth
	}
	verb, prec := layout(buf.Scalars()[:rows*minor], width)

	var line strings.Builder
	for i := range rows {
		line.Reset()
		for j, x := range v.Row(i) {
			if j > 0 {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, verb, width, prec, float64(x))
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("matrix: write row %d: %w", i, err)
		}
	}
	return nil
}

// layout picks the verb and precision for a set of values.
func layout[T vdsp.Floats](s []T, width int) (verb string, prec int) {
	integral := true
	intDigits := 1
	for _, x := range s {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if f != math.Trunc(f) {
			integral = false
		}
		d := digits(f)
		if f < 0 {
			d++
		}
		intDigits = max(intDigits, d)
	}

	if intDigits > width {
		// d.ddde+XX with a sign takes 7 characters besides the precision.
		return "%*.*e", min(max(width-7, 1), 6)
	}
	if integral {
		return "%*.*f", 0
	}
	return "%*.*f", min(max(width-intDigits-1, 1), 6)
}

// digits is the number of decimal digits in the integer part of |f|.
func digits(f float64) int {
	a := math.Abs(math.Trunc(f))
	if a < 10 {
		return 1
	}
	return int(math.Floor(math.Log10(a))) + 1
}
