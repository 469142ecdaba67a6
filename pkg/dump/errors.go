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
)

type FailureKind int

const (
	_ FailureKind = iota
	MissingField
	UndecodableField
	UnrecognizedSchemaVersion
)

var failureKindNames = map[FailureKind]string{
	MissingField:              "missing-field",
	UndecodableField:          "undecodable-field",
	UnrecognizedSchemaVersion: "unrecognized-schema-version",
}

func (k FailureKind) String() string {
	if s, ok := failureKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// ParseError describes why a line could not be turned into a Record.
// Offset is the byte offset of the failing field in Line, or len(Line)
// when the field is missing altogether.
type ParseError struct {
	Kind   FailureKind
	Line   string
	Offset int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnrecognizedSchemaVersion:
		return e.Err.Error()
	case MissingField:
		return fmt.Sprintf("malformed line: field %s missing (line is %d bytes)", e.Field, e.Offset)
	}
	return fmt.Sprintf("malformed line: field %s at offset %d: %s", e.Field, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
