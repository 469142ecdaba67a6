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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osrg/bgpdump/internal/pkg/metrics"
	"github.com/osrg/bgpdump/internal/pkg/prefixset"
	"github.com/osrg/bgpdump/pkg/aspath"
	"github.com/osrg/bgpdump/pkg/dump"
	"github.com/osrg/bgpdump/pkg/log"
)

const maxLineSize = 1 << 20

var parseOpts struct {
	SchemaVersion    string
	CommentSymbols   string
	RemovePrepending bool
	ExcludePrefixes  []string
	MetricsFile      string
}

// lineProcessor runs one line at a time through relevance check, parse,
// validation and prefix exclusion.
type lineProcessor struct {
	parser           *dump.Parser
	version          dump.SchemaVersion
	commentSymbols   string
	exclude          *prefixset.PrefixSet
	removePrepending bool
	json             bool
	collector        *metrics.LineCollector
	logger           log.Logger
}

func (p *lineProcessor) process(n int, line string) (*dump.Record, metrics.Outcome) {
	if !dump.IsRelevant(line, p.commentSymbols) {
		return nil, metrics.OutcomeIrrelevant
	}
	var rec *dump.Record
	switch res := p.parser.Parse(line, p.version).(type) {
	case dump.Failed:
		p.collector.ObserveFailure(res.Reason)
		return nil, metrics.OutcomeMalformed
	case dump.Parsed:
		rec = res.Rec
	}
	if !dump.IsValid(rec) {
		p.logger.Debug("skipping invalid entry", log.Fields{
			"Topic":  "Reader",
			"Line":   n,
			"Prefix": rec.Prefix,
			"Origin": rec.Origin,
		})
		return nil, metrics.OutcomeInvalid
	}
	if m, ok := p.exclude.Covers(rec.Prefix); ok {
		p.logger.Debug("skipping excluded prefix", log.Fields{
			"Topic":  "Reader",
			"Line":   n,
			"Prefix": rec.Prefix,
			"Key":    m,
		})
		return nil, metrics.OutcomeExcluded
	}
	if aspath.HasPrepending(rec.ASPath) {
		p.collector.ObservePrepending()
		if p.removePrepending {
			r := *rec
			r.ASPath = aspath.RemovePrepending(r.ASPath)
			rec = &r
		}
	}
	return rec, metrics.OutcomeAccepted
}

func (p *lineProcessor) run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n, accepted := 0, 0
	for scanner.Scan() {
		n++
		rec, outcome := p.process(n, scanner.Text())
		if outcome != metrics.OutcomeMalformed {
			p.collector.Observe(outcome)
		}
		if rec == nil {
			continue
		}
		accepted++
		var err error
		if p.json {
			err = printJSON(w, rec)
		} else {
			_, err = fmt.Fprintln(w, rec)
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line %d: %w", n+1, err)
	}
	p.logger.Info("finished reading the dump", log.Fields{
		"Topic":    "Reader",
		"Lines":    n,
		"Accepted": accepted,
	})
	return nil
}

func newLineProcessor(cmd *cobra.Command) (*lineProcessor, error) {
	flags := cmd.Flags()
	override(flags, "schema-version", &bgpConfig.Reader.SchemaVersion, parseOpts.SchemaVersion)
	override(flags, "comment-symbols", &bgpConfig.Reader.CommentSymbols, parseOpts.CommentSymbols)
	override(flags, "remove-prepending", &bgpConfig.Filter.RemovePrepending, parseOpts.RemovePrepending)
	if flags.Changed("exclude-prefix") {
		bgpConfig.Filter.ExcludePrefixes = append(bgpConfig.Filter.ExcludePrefixes, parseOpts.ExcludePrefixes...)
	}

	version, err := bgpConfig.Version()
	if err != nil {
		return nil, err
	}
	exclude, err := bgpConfig.ExcludedPrefixes()
	if err != nil {
		return nil, err
	}
	return &lineProcessor{
		parser:           dump.NewParser(dump.LoggerOption(logger)),
		version:          version,
		commentSymbols:   bgpConfig.Reader.CommentSymbols,
		exclude:          exclude,
		removePrepending: bgpConfig.Filter.RemovePrepending,
		json:             globalOpts.Json,
		collector:        metrics.NewLineCollector(),
		logger:           logger,
	}, nil
}

func newParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   cmdParse + " [<filename>]",
		Short: "print the valid routing entries of a BGPReader dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newLineProcessor(cmd)
			if err != nil {
				return err
			}

			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open file: %w", err)
				}
				defer file.Close()
				r = file
			}
			if err := p.run(r, cmd.OutOrStdout()); err != nil {
				return err
			}
			if parseOpts.MetricsFile != "" {
				if err := metrics.WriteTextfile(parseOpts.MetricsFile, p.collector); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&parseOpts.SchemaVersion, "schema-version", "s", "", "BGPReader output format (v1, v2)")
	parseCmd.Flags().StringVarP(&parseOpts.CommentSymbols, "comment-symbols", "c", "", "leading characters that mark comment lines")
	parseCmd.Flags().BoolVarP(&parseOpts.RemovePrepending, "remove-prepending", "", false, "collapse prepended ASes in printed paths")
	parseCmd.Flags().StringSliceVarP(&parseOpts.ExcludePrefixes, "exclude-prefix", "x", nil, "skip routes covered by this prefix (repeatable)")
	parseCmd.Flags().StringVarP(&parseOpts.MetricsFile, "metrics-file", "", "", "write line counters to this file in prometheus text format")
	return parseCmd
}
