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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vdsp/vdsp"
)

func newDispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Print the detected SIMD level and lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "level:   %s\n", vdsp.CurrentName())
			fmt.Fprintf(out, "width:   %d bytes\n", vdsp.CurrentWidth())
			fmt.Fprintf(out, "lanes:   float32=%d float64=%d\n", vdsp.MaxLanes[float32](), vdsp.MaxLanes[float64]())
			if vdsp.NoSimdEnv() {
				fmt.Fprintln(out, "VDSP_NO_SIMD is set")
			}
			return nil
		},
	}
}
