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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/osrg/bgpdump/pkg/dump"
)

// Outcome is what happened to one input line.
type Outcome string

const (
	OutcomeIrrelevant Outcome = "irrelevant"
	OutcomeMalformed  Outcome = "malformed"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeExcluded   Outcome = "excluded"
	OutcomeAccepted   Outcome = "accepted"
)

var (
	outcomeLabels = []string{"outcome"}
	failureLabels = []string{"kind"}
)

// LineCollector counts line outcomes of a dump run.
type LineCollector struct {
	lines     *prometheus.CounterVec
	failures  *prometheus.CounterVec
	prepended prometheus.Counter
}

func NewLineCollector() *LineCollector {
	return &LineCollector{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bgpdump_lines_total",
			Help: "Number of dump lines read, by outcome",
		}, outcomeLabels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bgpdump_parse_failures_total",
			Help: "Number of lines that failed to parse, by failure kind",
		}, failureLabels),
		prepended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bgpdump_prepended_paths_total",
			Help: "Number of accepted routes whose AS path carries prepending",
		}),
	}
}

func (c *LineCollector) Observe(o Outcome) {
	c.lines.WithLabelValues(string(o)).Inc()
}

func (c *LineCollector) ObserveFailure(e *dump.ParseError) {
	c.lines.WithLabelValues(string(OutcomeMalformed)).Inc()
	c.failures.WithLabelValues(e.Kind.String()).Inc()
}

func (c *LineCollector) ObservePrepending() {
	c.prepended.Inc()
}

func (c *LineCollector) Describe(out chan<- *prometheus.Desc) {
	c.lines.Describe(out)
	c.failures.Describe(out)
	c.prepended.Describe(out)
}

func (c *LineCollector) Collect(out chan<- prometheus.Metric) {
	c.lines.Collect(out)
	c.failures.Collect(out)
	c.prepended.Collect(out)
}

// WriteTextfile registers c on a fresh registry and writes it in the text
// exposition format, suitable for the node_exporter textfile collector.
func WriteTextfile(filename string, c *LineCollector) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(filename, registry)
}
