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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/osrg/bgpdump/pkg/config"
	"github.com/osrg/bgpdump/pkg/log"
)

const (
	cmdParse            = "parse"
	cmdAspath           = "aspath"
	cmdRemovePrepending = "remove-prepending"
	cmdDivergence       = "divergence"
	cmdConfig           = "config"
	cmdExample          = "example"
	cmdVersion          = "version"
)

func printJSON(w io.Writer, v interface{}) error {
	j, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(j))
	return err
}

func printError(err error) {
	if globalOpts.Json {
		j, _ := json.Marshal(struct {
			Error string `json:"error"`
		}{Error: err.Error()})
		fmt.Fprintln(os.Stderr, string(j))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

func exitWithError(err error) {
	printError(err)
	os.Exit(1)
}

// newLogger builds the logrus backed logger described by c. Records go to
// stdout, so diagnostics are written to w (stderr in practice).
func newLogger(c config.LogConfig, debug bool, w io.Writer) (*log.DefaultLogger, error) {
	level, err := log.ParseLogLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = log.DebugLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	if c.Plain {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	logger := log.NewLogrusLogger(l)
	logger.SetLevel(level)
	return logger, nil
}

// override copies value into dst when the named flag was given on the
// command line, letting flags win over the config file.
func override[T any](flags *pflag.FlagSet, name string, dst *T, value T) {
	if flags.Changed(name) {
		*dst = value
	}
}
