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

package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vdsp/vdsp"
	"github.com/ajroetker/go-vdsp/vdsp/contrib/matrix"
)

func newFormatCmd() *cobra.Command {
	var (
		rows, cols, width int
		scale             float64
		seed              int64
	)
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print a random matrix with matrix.Fprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 || cols <= 0 {
				return fmt.Errorf("rows and cols must be positive, got %dx%d", rows, cols)
			}
			rng := rand.New(rand.NewSource(seed))
			m := vdsp.NewVector[float64](rows * cols)
			for i := range m.MutableScalars() {
				m.MutableScalars()[i] = scale * rng.NormFloat64()
			}
			return matrix.Fprint[float64](cmd.OutOrStdout(), m, cols, width)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "number of columns")
	cmd.Flags().IntVar(&width, "width", matrix.DefaultWidth, "field width per value")
	cmd.Flags().Float64Var(&scale, "scale", 1, "standard deviation of the values")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
