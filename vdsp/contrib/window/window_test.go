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

package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedForm(kind string, i, denom int) float64 {
	x := 2 * math.Pi * float64(i) / float64(denom)
	switch kind {
	case "blackman":
		return 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	case "hamming":
		return 0.54 - 0.46*math.Cos(x)
	default:
		return 0.5 - 0.5*math.Cos(x)
	}
}

func TestClosedForms(t *testing.T) {
	const n = 16
	gens := map[string]func(int, ...Option) []float64{
		"blackman": Blackman[float64],
		"hamming":  Hamming[float64],
		"hanning":  Hanning[float64],
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			periodic := gen(n)
			require.Len(t, periodic, n)
			for i, w := range periodic {
				assert.InDelta(t, closedForm(name, i, n), w, 1e-12, "periodic[%d]", i)
			}

			symmetric := gen(n, Symmetric())
			for i, w := range symmetric {
				assert.InDelta(t, closedForm(name, i, n-1), w, 1e-12, "symmetric[%d]", i)
			}
			assert.InDelta(t, symmetric[0], symmetric[n-1], 1e-12)
		})
	}
}

func TestHalf(t *testing.T) {
	full := Hamming[float32](9)
	half := Hamming[float32](9, Half())
	require.Len(t, half, 5)
	assert.Equal(t, full[:5], half)

	dst := []float32{-1, -1, -1, -1}
	HammingTo(dst, Half())
	assert.Equal(t, float32(-1), dst[3], "samples past the half are untouched")
}

func TestNormalizedHanning(t *testing.T) {
	const n = 64
	w := Hanning[float64](n, Normalized())
	var ms float64
	for _, v := range w {
		ms += v * v
	}
	assert.InDelta(t, 1.0, ms/n, 1e-12)

	// Normalized has no effect on other kinds.
	assert.Equal(t, Hamming[float64](n), Hamming[float64](n, Normalized()))
}

func TestDegenerateLengths(t *testing.T) {
	assert.Nil(t, Blackman[float64](0))
	assert.Equal(t, []float64{1}, Hanning[float64](1, Symmetric()))
	assert.Equal(t, []float64{0}, Hanning[float64](1))
}

func TestApply(t *testing.T) {
	w := Hanning[float64](4)
	signal := []float64{2, 2, 2, 2}
	dst := make([]float64, 4)
	Apply(dst, signal, w)
	for i := range dst {
		assert.InDelta(t, 2*w[i], dst[i], 1e-15)
	}
}
