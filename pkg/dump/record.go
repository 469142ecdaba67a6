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
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type SchemaVersion int

const (
	V1 SchemaVersion = iota + 1
	V2
)

func (v SchemaVersion) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	}
	return fmt.Sprintf("SchemaVersion(%d)", int(v))
}

func ParseSchemaVersion(s string) (SchemaVersion, error) {
	switch strings.ToLower(s) {
	case "v1", "1":
		return V1, nil
	case "v2", "2":
		return V2, nil
	}
	return 0, fmt.Errorf("unknown schema version: %q", s)
}

// Field names as they appear in Record.Fields.
const (
	FieldTime        = "time"
	FieldProject     = "project"
	FieldCollector   = "collector"
	FieldPeerASN     = "peer_asn"
	FieldPeerIP      = "peer_ip"
	FieldPrefix      = "prefix"
	FieldASPath      = "as_path"
	FieldOrigin      = "origin"
	FieldCommunities = "communities"
)

// Record is one decoded RIB/update elem. A Record is either fully populated
// by Parse or the zero value.
type Record struct {
	Version     SchemaVersion
	Time        time.Time
	Project     string
	Collector   string
	PeerASN     string
	PeerIP      string
	Prefix      string
	ASPath      string
	Origin      string
	Communities string
}

// IsEmpty reports whether r is nil or the zero Record.
func (r *Record) IsEmpty() bool {
	return r == nil || *r == Record{}
}

// Fields returns the record as a name keyed mapping. The time is an int64
// of epoch seconds for V1 and a float64 of seconds for V2.
func (r *Record) Fields() map[string]interface{} {
	if r.IsEmpty() {
		return map[string]interface{}{}
	}
	m := map[string]interface{}{
		FieldProject:   r.Project,
		FieldCollector: r.Collector,
		FieldPeerASN:   r.PeerASN,
		FieldPeerIP:    r.PeerIP,
		FieldPrefix:    r.Prefix,
		FieldASPath:    r.ASPath,
		FieldOrigin:    r.Origin,
	}
	switch r.Version {
	case V2:
		m[FieldTime] = float64(r.Time.UnixMicro()) / 1e6
		m[FieldCommunities] = r.Communities
	default:
		m[FieldTime] = r.Time.Unix()
	}
	return m
}

func (r *Record) String() string {
	if r.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("%s %s/%s peer %s (AS%s) prefix %s path [%s] origin %s",
		r.Time.UTC().Format(time.RFC3339), r.Project, r.Collector, r.PeerIP, r.PeerASN, r.Prefix, r.ASPath, r.Origin)
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}
