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
	"strings"
	"unicode/utf8"
)

const (
	// MinRelevantFields is the number of |-separated segments a line
	// needs before it is worth handing to Parse.
	MinRelevantFields = 6

	// DefaultRoute is never a valid analysis target.
	DefaultRoute = "0.0.0.0/0"
)

// IsRelevant reports whether line is neither a comment (its first
// character is one of commentSymbols) nor too short to be an elem line.
func IsRelevant(line string, commentSymbols string) bool {
	first, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return false
	}
	if strings.ContainsRune(commentSymbols, first) {
		return false
	}
	return strings.Count(line, Delimiter)+1 >= MinRelevantFields
}

// IsValid reports whether rec describes a route worth analysing: a single
// non-zero origin AS, a non-empty AS path and a prefix other than the
// IPv4 default route.
func IsValid(rec *Record) bool {
	if rec.IsEmpty() {
		return false
	}
	if rec.Origin == "" || rec.Origin == "0" {
		return false
	}
	// AS_SET origin, e.g. "{64500,64501}"
	if rec.Origin[0] == '{' {
		return false
	}
	if rec.ASPath == "" {
		return false
	}
	if rec.Prefix == DefaultRoute {
		return false
	}
	return true
}
