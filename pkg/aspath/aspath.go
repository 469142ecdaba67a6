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

// Package aspath works on AS paths in their textual dump form: AS numbers
// separated by single spaces, nearest peer first and origin AS last.
package aspath

import (
	"strings"
)

const separator = " "

// NoDivergence is returned by FindDivergencePoint when the paths agree
// for as long as both have ASes, counting from the origin.
const NoDivergence = -1

func Tokens(path string) []string {
	return strings.Split(path, separator)
}

// Origin returns the rightmost AS of path.
func Origin(path string) string {
	if i := strings.LastIndex(path, separator); i >= 0 {
		return path[i+len(separator):]
	}
	return path
}

// RemovePrepending collapses runs of the same AS into a single occurrence,
// e.g. "1 2 3 3 3" becomes "1 2 3". Repeats that are not adjacent, as in
// "1 2 1", are kept.
func RemovePrepending(path string) string {
	tokens := Tokens(path)
	out := tokens[:0:0]
	for i, as := range tokens {
		if i > 0 && as == tokens[i-1] {
			continue
		}
		out = append(out, as)
	}
	return strings.Join(out, separator)
}

// HasPrepending reports whether some AS appears twice in a row.
func HasPrepending(path string) bool {
	tokens := Tokens(path)
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == tokens[i-1] {
			return true
		}
	}
	return false
}

// FindDivergencePoint compares path1 and path2 starting from the origin
// AS and returns the index, counted from the origin, of the first AS in
// which they differ. 0 means the origins already differ. When one path
// runs out before any difference is found the paths are not considered
// divergent and NoDivergence is returned, even if their lengths differ.
func FindDivergencePoint(path1, path2 string) int {
	t1 := Tokens(path1)
	t2 := Tokens(path2)
	for i := 0; i < len(t1) && i < len(t2); i++ {
		if t1[len(t1)-1-i] != t2[len(t2)-1-i] {
			return i
		}
	}
	return NoDivergence
}
