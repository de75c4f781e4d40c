// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command mphnd-demo drives the six literal scenarios the engine's test
// suite is built around, plus a small concurrency demo, from the
// command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mphnd-demo",
		Short: "Walk through the multi-prompt handler engine's scenarios",
	}

	root.AddCommand(&cobra.Command{
		Use:       "scenario [name]",
		Short:     "run one of the six literal scenarios (s1-linear-ask .. s6-multi-shot)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: scenarioNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := findScenario(args[0])
			if !ok {
				return errors.Errorf("unknown scenario %q (want one of: %s)", args[0], strings.Join(scenarioNames(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.run())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "scenarios",
		Short: "list every scenario name",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenarioNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	var fibers int
	concurrencyCmd := &cobra.Command{
		Use:   "concurrency",
		Short: "run several independent fibers, each with its own State handler, side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runConcurrent(cmd.Context(), fibers)
			if err != nil {
				return errors.Wrap(err, "concurrency demo failed")
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	concurrencyCmd.Flags().IntVarP(&fibers, "fibers", "n", 4, "number of concurrent fibers to run")
	root.AddCommand(concurrencyCmd)

	return root
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}
