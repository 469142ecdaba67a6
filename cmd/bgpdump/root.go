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
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/osrg/bgpdump/pkg/config"
	"github.com/osrg/bgpdump/pkg/log"
)

var globalOpts struct {
	ConfigFile string
	ConfigType string
	LogLevel   string
	LogPlain   bool
	Debug      bool
	Json       bool
}

var (
	bgpConfig *config.Config
	logger    log.Logger
)

func loadConfig(cmd *cobra.Command) error {
	c := config.NewDefaultConfig()
	if globalOpts.ConfigFile != "" {
		var err error
		c, err = config.ReadConfigFile(globalOpts.ConfigFile, globalOpts.ConfigType)
		if err != nil {
			return err
		}
	}
	override(cmd.Flags(), "log-level", &c.Log.Level, globalOpts.LogLevel)
	override(cmd.Flags(), "log-plain", &c.Log.Plain, globalOpts.LogPlain)

	l, err := newLogger(c.Log, globalOpts.Debug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	bgpConfig, logger = c, l

	fields := log.Fields{"Topic": "Config"}
	if globalOpts.ConfigFile != "" {
		fields["File"] = globalOpts.ConfigFile
	}
	logger.Debug("configuration loaded", fields)
	if globalOpts.Debug {
		pretty.Fprintf(cmd.ErrOrStderr(), "%# v\n", c)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	cobra.EnablePrefixMatching = true

	rootCmd := &cobra.Command{
		Use:           "bgpdump",
		Short:         "parse BGPReader dumps and analyse AS paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&globalOpts.ConfigFile, "config-file", "f", "", "specifying a config file")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.ConfigType, "config-type", "t", "toml", "specifying config type (toml, yaml, json)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.LogLevel, "log-level", "l", config.DEFAULT_LOG_LEVEL, "specifying log level")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.LogPlain, "log-plain", "", false, "use plain format for logging (json by default)")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Debug, "debug", "d", false, "use debug")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Json, "json", "j", false, "use json format to output format")

	rootCmd.AddCommand(newParseCmd(), newAspathCmd(), newConfigCmd(), newVersionCmd())
	return rootCmd
}
