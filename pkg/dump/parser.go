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

package dump

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/osrg/bgpdump/pkg/log"
)

const Delimiter = "|"

// Result is either Parsed or Failed.
type Result interface {
	// Record returns the decoded record, or an empty one for Failed.
	Record() *Record
	isResult()
}

// Parsed carries the record decoded from a well formed line.
type Parsed struct {
	Rec *Record
}

func (p Parsed) Record() *Record {
	return p.Rec
}

func (Parsed) isResult() {}

// Failed carries the reason a line could not be decoded.
type Failed struct {
	Reason *ParseError
}

func (Failed) Record() *Record {
	return &Record{}
}

func (Failed) isResult() {}

type ParserOption func(*Parser)

func LoggerOption(logger log.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser decodes BGPReader elem lines. It holds no per-line state and is
// safe for concurrent use.
type Parser struct {
	logger log.Logger
}

// NewParser returns a Parser logging through log.NewDefaultLogger unless
// LoggerOption says otherwise.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	if p.logger == nil {
		p.logger = log.NewDefaultLogger()
	}
	return p
}

var defaultParser = NewParser()

// Parse decodes line with a parser logging through the default logger.
func Parse(line string, v SchemaVersion) Result {
	return defaultParser.Parse(line, v)
}

func (p *Parser) Parse(line string, v SchemaVersion) Result {
	columns, ok := schemas[v]
	if !ok {
		return p.fail(&ParseError{
			Kind: UnrecognizedSchemaVersion,
			Line: line,
			Err:  fmt.Errorf("unrecognized schema version: %s", v),
		})
	}

	segments := strings.Split(line, Delimiter)
	offsets := make([]int, len(segments))
	for i := 1; i < len(segments); i++ {
		offsets[i] = offsets[i-1] + len(segments[i-1]) + len(Delimiter)
	}

	rec := &Record{Version: v}
	for _, c := range columns {
		if c.pos >= len(segments) {
			return p.fail(&ParseError{
				Kind:   MissingField,
				Line:   line,
				Offset: len(line),
				Field:  c.name,
				Err:    fmt.Errorf("position %d out of range, line has %d fields", c.pos, len(segments)),
			})
		}
		value := strings.TrimRightFunc(segments[c.pos], unicode.IsSpace)
		if err := c.decode(rec, value); err != nil {
			return p.fail(&ParseError{
				Kind:   UndecodableField,
				Line:   line,
				Offset: offsets[c.pos],
				Field:  c.name,
				Err:    err,
			})
		}
	}
	return Parsed{Rec: rec}
}

func (p *Parser) fail(e *ParseError) Result {
	fields := log.Fields{
		"Topic":  "Parser",
		"Key":    e.Kind.String(),
		"Line":   e.Line,
		"Offset": e.Offset,
		"Error":  e,
	}
	if e.Field != "" {
		fields["Field"] = e.Field
	}
	if e.Kind == UnrecognizedSchemaVersion {
		p.logger.Warn("unrecognized schema version", fields)
	} else {
		p.logger.Warn("malformed line", fields)
	}
	return Failed{Reason: e}
}
