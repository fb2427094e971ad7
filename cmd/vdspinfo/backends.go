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
	"math"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vdsp/vdsp"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends and the families each one provides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRIORITY\tAVAILABLE\tFLOAT32\tFLOAT64")
			for _, b := range vdsp.Backends() {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n", b.Name, priority(b.Priority), b.Available,
					families(b.Float32), families(b.Float64))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			active := lo.Map(vdsp.Families, func(f vdsp.Family, _ int) string {
				return fmt.Sprintf("%s=%s/%s", f, vdsp.ActiveBackend[float32](f), vdsp.ActiveBackend[float64](f))
			})
			fmt.Fprintln(cmd.OutOrStdout(), "active (float32/float64):", strings.Join(active, " "))
			return nil
		},
	}
}

func families(fs []vdsp.Family) string {
	if len(fs) == 0 {
		return "-"
	}
	return strings.Join(lo.Map(fs, func(f vdsp.Family, _ int) string { return f.String() }), ",")
}

func priority(p int) string {
	if p == math.MinInt {
		return "fallback"
	}
	return fmt.Sprint(p)
}
