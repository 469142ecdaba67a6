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

package prefixset

import (
	"bytes"
	"fmt"
	"net"

	radix "github.com/armon/go-radix"
)

type family int

const (
	familyIPv4 family = iota
	familyIPv6
)

// PrefixSet matches prefixes against a list of covering prefixes. A prefix
// matches when it equals or is more specific than an entry of the set.
type PrefixSet struct {
	trees map[family]*radix.Tree
}

func New(prefixes []string) (*PrefixSet, error) {
	s := &PrefixSet{
		trees: map[family]*radix.Tree{
			familyIPv4: radix.New(),
			familyIPv6: radix.New(),
		},
	}
	for _, p := range prefixes {
		f, key, err := cidrToRadixkey(p)
		if err != nil {
			return nil, err
		}
		s.trees[f].Insert(key, p)
	}
	return s, nil
}

func (s *PrefixSet) Len() int {
	if s == nil {
		return 0
	}
	return s.trees[familyIPv4].Len() + s.trees[familyIPv6].Len()
}

// Covers reports whether prefix falls under an entry of the set and, if
// so, returns the longest such entry. Unparsable prefixes never match.
func (s *PrefixSet) Covers(prefix string) (string, bool) {
	if s.Len() == 0 {
		return "", false
	}
	f, key, err := cidrToRadixkey(prefix)
	if err != nil {
		return "", false
	}
	_, v, ok := s.trees[f].LongestPrefix(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (s *PrefixSet) List() []string {
	l := make([]string, 0, s.Len())
	if s == nil {
		return l
	}
	for _, f := range []family{familyIPv4, familyIPv6} {
		s.trees[f].Walk(func(_ string, v interface{}) bool {
			l = append(l, v.(string))
			return false
		})
	}
	return l
}

func ipToRadixkey(b []byte, max uint8) string {
	var buffer bytes.Buffer
	for i := 0; i < len(b) && i < int(max); i++ {
		fmt.Fprintf(&buffer, "%08b", b[i])
	}
	return buffer.String()[:max]
}

func cidrToRadixkey(cidr string) (family, string, error) {
	_, n, err := net.ParseCIDR(cidr)
	if err != nil {
		return 0, "", fmt.Errorf("invalid prefix %q: %w", cidr, err)
	}
	ones, bits := n.Mask.Size()
	if bits == net.IPv4len*8 {
		return familyIPv4, ipToRadixkey(n.IP.To4(), uint8(ones)), nil
	}
	return familyIPv6, ipToRadixkey(n.IP.To16(), uint8(ones)), nil
}
