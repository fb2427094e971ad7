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

package vdsp_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vdsp/vdsp"
)

func TestFixedOverArray(t *testing.T) {
	var arr [4]float32
	f := vdsp.Fixed[float32](arr[:])
	f.MutableScalars()[2] = 7

	assert.Equal(t, 4, f.Len())
	assert.Equal(t, 1, f.Width())
	assert.Equal(t, 4, vdsp.VectorCount[float32](f))
	assert.Equal(t, float32(7), arr[2], "writes must land in the array")
}

func TestRawBorrowsMemory(t *testing.T) {
	backing := []float64{1, 2, 3, 4, 5}
	raw := vdsp.Raw[float64](unsafe.Pointer(&backing[1]), 3)

	require.Equal(t, 3, raw.Len())
	assert.Equal(t, []float64{2, 3, 4}, raw.Scalars())

	raw.MutableScalars()[0] = -1
	assert.Equal(t, float64(-1), backing[1])

	assert.Equal(t, 0, vdsp.Raw[float64](nil, 3).Len())
	assert.Equal(t, 0, vdsp.Raw[float64](unsafe.Pointer(&backing[0]), 0).Len())
}

func TestVectorAppendReserve(t *testing.T) {
	v := vdsp.NewVector[float32](2)
	v.Reserve(10)
	assert.GreaterOrEqual(t, v.Cap(), 12)

	v.AppendScalars(3, 4)
	assert.Equal(t, []float32{0, 0, 3, 4}, v.Scalars())
	assert.Equal(t, 4, vdsp.VectorCount[float32](v))

	src := []float32{1, 2}
	w := vdsp.VectorOf(src...)
	src[0] = 99
	assert.Equal(t, float32(1), w.Scalars()[0], "VectorOf must copy")

	wrapped := vdsp.Wrap(src)
	assert.Equal(t, float32(99), wrapped.Scalars()[0], "Wrap must not copy")
}

func TestComplexVectorFlattens(t *testing.T) {
	v := vdsp.ComplexVectorOf(
		vdsp.Complex[float64]{Re: 1, Im: 2},
		vdsp.Complex[float64]{Re: 3, Im: 4},
	)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2, v.Width())
	assert.Equal(t, 4, vdsp.VectorCount[float64](v))
	assert.Equal(t, []float64{1, 2, 3, 4}, v.Scalars())

	v.MutableScalars()[3] = 40
	assert.Equal(t, float64(40), v.Elements()[1].Im)

	v.AppendScalars(5, 6, 7)
	require.Equal(t, 4, v.Len())
	assert.Equal(t, vdsp.Complex[float64]{Re: 7}, v.Elements()[3])

	empty := vdsp.NewComplexVector[float32](0)
	assert.Nil(t, empty.Scalars())
}

func TestReadOnlyAndNil(t *testing.T) {
	ro := vdsp.AsReadOnly[float32](vdsp.Fixed[float32]{1, 2, 3})
	assert.Equal(t, 3, ro.Len())
	assert.Equal(t, []float32{1, 2, 3}, ro.Scalars())

	var buf vdsp.Buffer[float32] = ro
	_, mutable := buf.(vdsp.MutableBuffer[float32])
	assert.False(t, mutable)

	assert.Equal(t, 0, vdsp.VectorCount[float32](nil))
	assert.Equal(t, 0, vdsp.AsReadOnly[float32](nil).Len())
}

func TestPrecisionOf(t *testing.T) {
	assert.Equal(t, vdsp.Single, vdsp.PrecisionOf[float32]())
	assert.Equal(t, vdsp.Double, vdsp.PrecisionOf[float64]())
	assert.Equal(t, 8, vdsp.Double.Size())
	assert.Equal(t, "single", vdsp.Single.String())
}

func TestOverlaps(t *testing.T) {
	s := make([]float32, 10)
	assert.True(t, vdsp.Overlaps(s[0:5], s[4:8]))
	assert.False(t, vdsp.Overlaps(s[0:4], s[4:8]))
	assert.True(t, vdsp.StartsAfter(s[2:], s[:5]))
	assert.False(t, vdsp.Overlaps(s[:0], s))
}
