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

// transposeBlock is the tile edge for the cache-blocked transpose.
const transposeBlock = 32

type portableMatrix[T Floats] struct{}

func (portableMatrix[T]) Gemm(transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) bool {
	for i := range m {
		crow := c[i*ldc : i*ldc+n]
		switch beta {
		case 0:
			clear(crow)
		case 1:
		default:
			for j := range crow {
				crow[j] *= beta
			}
		}

		for p := range k {
			var aip T
			if transA {
				aip = alpha * a[p*lda+i]
			} else {
				aip = alpha * a[i*lda+p]
			}

			if !transB {
				brow := b[p*ldb : p*ldb+n]
				for j := range crow {
					crow[j] += aip * brow[j]
				}
				continue
			}
			for j := range crow {
				crow[j] += aip * b[j*ldb+p]
			}
		}
	}
	return true
}

func (portableMatrix[T]) Copy2D(dst []T, dstStride int, src []T, srcStride int, rows, cols int) bool {
	if Overlaps(dst, src) && dstStride != srcStride {
		// Rows of different pitch interleave, so no row order is safe.
		src = append([]T(nil), src...)
	}
	if StartsAfter(dst, src) && Overlaps(dst, src) {
		for r := rows - 1; r >= 0; r-- {
			copy(dst[r*dstStride:r*dstStride+cols], src[r*srcStride:r*srcStride+cols])
		}
		return true
	}
	for r := range rows {
		copy(dst[r*dstStride:r*dstStride+cols], src[r*srcStride:r*srcStride+cols])
	}
	return true
}

func (portableMatrix[T]) Transpose(dst, src []T, rows, cols int) bool {
	for i0 := 0; i0 < rows; i0 += transposeBlock {
		iEnd := min(i0+transposeBlock, rows)
		for j0 := 0; j0 < cols; j0 += transposeBlock {
			jEnd := min(j0+transposeBlock, cols)
			for i := i0; i < iEnd; i++ {
				for j := j0; j < jEnd; j++ {
					dst[j*rows+i] = src[i*cols+j]
				}
			}
		}
	}
	return true
}
