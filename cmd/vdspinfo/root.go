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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vdsp/vdsp"
	_ "github.com/ajroetker/go-vdsp/vdsp/backend/accelerate"
	_ "github.com/ajroetker/go-vdsp/vdsp/backend/gonum"
)

func newRootCmd() *cobra.Command {
	var (
		backend string
		verbose bool
	)
	root := &cobra.Command{
		Use:           "vdspinfo",
		Short:         "Inspect vdsp backends and dispatch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				vdsp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
				vdsp.Reset()
			}
			if !cmd.Flags().Changed("backend") {
				return nil
			}
			return vdsp.Use(backend)
		},
	}
	root.PersistentFlags().StringVar(&backend, "backend", "", "pin every operation to this backend (empty: highest priority; unset: VDSP_BACKEND/VDSP_PORTABLE)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend selection to stderr")

	root.AddCommand(
		newBackendsCmd(),
		newDispatchCmd(),
		newFormatCmd(),
		newMatmulCmd(),
	)
	return root
}
