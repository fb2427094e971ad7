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

package conv

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveCorrelate(signal, kernel []float64, factor int) []float64 {
	var out []float64
	for n := 0; n*factor+len(kernel) <= len(signal); n++ {
		var acc float64
		for p, k := range kernel {
			acc += signal[n*factor+p] * k
		}
		out = append(out, acc)
	}
	return out
}

func randomSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func TestCorrelateMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, tc := range []struct{ n, p int }{{1, 1}, {10, 3}, {64, 16}, {257, 31}} {
		signal := randomSlice(rng, tc.n)
		kernel := randomSlice(rng, tc.p)
		want := naiveCorrelate(signal, kernel, 1)

		dst := make([]float64, OutputLen(tc.n, tc.p, 1))
		require.Equal(t, len(want), Correlate(dst, signal, kernel))
		assert.InDeltaSlice(t, want, dst, 1e-12)
	}
}

func TestConvolve(t *testing.T) {
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{1, 0, -1}

	dst := make([]float64, 2)
	require.Equal(t, 2, Convolve(dst, signal, kernel))
	// Reversed kernel is {-1, 0, 1}.
	assert.Equal(t, []float64{2, 2}, dst)

	full := ConvolveFull(signal, kernel)
	assert.Equal(t, []float64{1, 2, 2, 2, -3, -4}, full)
	assert.Nil(t, ConvolveFull(signal, nil))
}

func TestDecimate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	signal := randomSlice(rng, 100)
	kernel := randomSlice(rng, 5)
	want := naiveCorrelate(signal, kernel, 4)

	dst := make([]float64, 64)
	n := Decimate(dst, signal, 4, kernel)
	require.Equal(t, OutputLen(100, 5, 4), n)
	require.Equal(t, len(want), n)
	assert.InDeltaSlice(t, want, dst[:n], 1e-12)
}

func TestShortInputs(t *testing.T) {
	dst := []float32{-1, -1}
	assert.Zero(t, Correlate(dst, []float32{1}, []float32{1, 1}))
	assert.Zero(t, Correlate(dst, []float32{1, 2}, nil))
	assert.Zero(t, Decimate(dst, []float32{1, 2, 3}, 0, []float32{1}))
	assert.Equal(t, []float32{-1, -1}, dst)

	// dst shorter than the valid output is filled, not overrun.
	assert.Equal(t, 2, Correlate(dst, []float32{1, 2, 3, 4, 5}, []float32{1}))
	assert.Equal(t, []float32{1, 2}, dst)
}

func TestMovingAverage(t *testing.T) {
	dst := make([]float64, 3)
	n := MovingAverage(dst, []float64{1, 2, 3, 4, 5}, 3)
	require.Equal(t, 3, n)
	assert.InDeltaSlice(t, []float64{2, 3, 4}, dst, 1e-12)
	assert.Zero(t, MovingAverage(dst, []float64{1}, 0))
}
