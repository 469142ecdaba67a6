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
	"math"
	"strconv"
	"strings"
	"time"
)

// maxFractionalSeconds bounds V2 timestamps to what time.Time.UnixMicro can
// represent without overflow.
const maxFractionalSeconds = math.MaxInt64/1e6 - 1

// BGPReader elem formats, see https://bgpstream.caida.org/v2-beta#api
//
// v1:
//  <dump-type>|<elem-type>|<record-ts>|<project>|<collector>|<peer-ASN>|<peer-IP>|
//  <prefix>|<next-hop-IP>|<AS-path>|<origin-AS>|<communities>|<old-state>|<new-state>
//
// v2:
//  <rec-type>|<elem-type>|<rec-ts-sec>.<rec-ts-usec>|<project>|<collector>|<router>|<router-ip>|
//  <peer-ASN>|<peer-IP>|<prefix>|<next-hop-IP>|<AS-path>|<origin-AS>|<communities>|<old-state>|<new-state>

type decoder func(r *Record, v string) error

type column struct {
	pos    int
	name   string
	decode decoder
}

var schemas = map[SchemaVersion][]column{
	V1: {
		{2, FieldTime, decodeEpochSeconds},
		{3, FieldProject, func(r *Record, v string) error { r.Project = v; return nil }},
		{4, FieldCollector, func(r *Record, v string) error { r.Collector = v; return nil }},
		{5, FieldPeerASN, func(r *Record, v string) error { r.PeerASN = v; return nil }},
		{6, FieldPeerIP, func(r *Record, v string) error { r.PeerIP = v; return nil }},
		{7, FieldPrefix, func(r *Record, v string) error { r.Prefix = v; return nil }},
		{9, FieldASPath, func(r *Record, v string) error { r.ASPath = v; return nil }},
		{10, FieldOrigin, func(r *Record, v string) error { r.Origin = v; return nil }},
	},
	V2: {
		{2, FieldTime, decodeFractionalSeconds},
		{3, FieldProject, func(r *Record, v string) error { r.Project = v; return nil }},
		{4, FieldCollector, func(r *Record, v string) error { r.Collector = v; return nil }},
		{7, FieldPeerASN, func(r *Record, v string) error { r.PeerASN = v; return nil }},
		{8, FieldPeerIP, func(r *Record, v string) error { r.PeerIP = v; return nil }},
		{9, FieldPrefix, func(r *Record, v string) error { r.Prefix = v; return nil }},
		{11, FieldASPath, func(r *Record, v string) error { r.ASPath = v; return nil }},
		{12, FieldOrigin, func(r *Record, v string) error { r.Origin = v; return nil }},
		{13, FieldCommunities, func(r *Record, v string) error { r.Communities = v; return nil }},
	},
}

// Time fields tolerate surrounding whitespace.
func decodeEpochSeconds(r *Record, v string) error {
	sec, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	r.Time = time.Unix(sec, 0)
	return nil
}

func decodeFractionalSeconds(r *Record, v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite timestamp %q", v)
	}
	sec, frac := math.Modf(f)
	if math.Abs(sec) > maxFractionalSeconds {
		return &strconv.NumError{Func: "ParseFloat", Num: v, Err: strconv.ErrRange}
	}
	r.Time = time.Unix(int64(sec), int64(math.Round(frac*1e6))*int64(time.Microsecond))
	return nil
}
