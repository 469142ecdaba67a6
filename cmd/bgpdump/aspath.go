// Copyright (C) 2026 Nippon Telegraph and Telephone Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osrg/bgpdump/pkg/aspath"
)

func newAspathCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   cmdRemovePrepending + " <as-path>",
		Short: "collapse prepended ASes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := aspath.RemovePrepending(strings.Join(args, " "))
			if globalOpts.Json {
				return printJSON(cmd.OutOrStdout(), map[string]string{"as_path": path})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	divergenceCmd := &cobra.Command{
		Use:   cmdDivergence + " <as-path> <as-path>",
		Short: "show where two AS paths diverge, counted from the origin AS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := aspath.FindDivergencePoint(args[0], args[1])
			if globalOpts.Json {
				return printJSON(cmd.OutOrStdout(), map[string]int{"divergence_point": i})
			}
			var err error
			if i == aspath.NoDivergence {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "paths do not diverge")
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", i)
			}
			return err
		},
	}

	aspathCmd := &cobra.Command{
		Use:   cmdAspath,
		Short: "AS path utilities",
	}
	aspathCmd.AddCommand(removeCmd, divergenceCmd)
	return aspathCmd
}
