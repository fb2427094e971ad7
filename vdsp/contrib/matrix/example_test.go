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

package matrix_test

import (
	"fmt"

	"github.com/ajroetker/go-vdsp/vdsp"
	"github.com/ajroetker/go-vdsp/vdsp/contrib/matrix"
)

func ExampleAssign() {
	dst := make(vdsp.Fixed[float64], 2*3)
	src := vdsp.Fixed[float64]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	t := matrix.Assign[float64](dst, 3, src, 3, matrix.Region{Major: 10, Minor: 10})
	fmt.Println(t.Major, t.Minor, t.Clamped)
	fmt.Print(matrix.Format[float64](dst, 3, 2))
	// Output:
	// 2 3 true
	//  1  2  3
	//  4  5  6
}

func ExampleSwapMajor() {
	rows := vdsp.Fixed[float32]{0, 1, 2, 3, 4, 5}
	matrix.SwapMajor[float32](rows, 0, 3, 1, 2)
	fmt.Println(rows)
	// Output: [2 3 4 5 0 1]
}
