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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vdsp/vdsp"
	"github.com/ajroetker/go-vdsp/vdsp/contrib/matmul"
	"github.com/ajroetker/go-vdsp/vdsp/contrib/workerpool"
)

func newMatmulCmd() *cobra.Command {
	var (
		n, iters, workers int
		double            bool
	)
	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Time an n x n matrix product on the active backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 || iters <= 0 {
				return fmt.Errorf("n and iters must be positive")
			}
			var pool *workerpool.Pool
			if workers != 1 {
				pool = workerpool.New(workers)
				defer pool.Close()
			}
			var elapsed time.Duration
			if double {
				elapsed = timeMatMul[float64](pool, n, iters)
			} else {
				elapsed = timeMatMul[float32](pool, n, iters)
			}
			per := elapsed / time.Duration(iters)
			flops := 2 * float64(n) * float64(n) * float64(n)
			fmt.Fprintf(cmd.OutOrStdout(), "backend=%s workers=%d n=%d: %v/op, %.2f GFLOP/s\n",
				vdsp.ActiveBackend[float32](vdsp.FamilyMatrix), pool.NumWorkers(), n, per,
				flops/per.Seconds()/1e9)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 256, "matrix dimension")
	cmd.Flags().IntVar(&iters, "iters", 10, "number of timed products")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0: GOMAXPROCS, 1: no pool)")
	cmd.Flags().BoolVar(&double, "float64", false, "use float64 instead of float32")
	return cmd
}

func timeMatMul[T vdsp.Floats](pool *workerpool.Pool, n, iters int) time.Duration {
	rng := rand.New(rand.NewSource(1))
	a, b, c := make([]T, n*n), make([]T, n*n), make([]T, n*n)
	for i := range a {
		a[i], b[i] = T(rng.Float64()), T(rng.Float64())
	}
	matmul.MatMulAuto(pool, a, b, c, n, n, n)
	start := time.Now()
	for range iters {
		matmul.MatMulAuto(pool, a, b, c, n, n, n)
	}
	return time.Since(start)
}
