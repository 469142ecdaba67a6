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

	"github.com/spf13/cobra"

	"github.com/osrg/bgpdump/internal/pkg/version"
	"github.com/osrg/bgpdump/pkg/config"
)

func newConfigCmd() *cobra.Command {
	exampleCmd := &cobra.Command{
		Use:   cmdExample,
		Short: "print an example configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.WriteExample(cmd.OutOrStdout())
		},
	}

	configCmd := &cobra.Command{
		Use: cmdConfig,
	}
	configCmd.AddCommand(exampleCmd)
	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use: cmdVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "bgpdump version", version.Version())
			return err
		},
	}
}
