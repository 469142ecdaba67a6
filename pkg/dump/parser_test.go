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
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osrg/bgpdump/pkg/log"
)

const (
	v1Line = "A|B|100|proj|coll|64500|1.2.3.4|10.0.0.0/8|5.6.7.8|64500 64501|64501|\n"
	v2Line = "R|R|1438415400.123456|routeviews|route-views2|||3130|147.28.7.1|1.0.0.0/24|147.28.7.1|3130 1239 15169|15169|1239:321 3130:380|||\n"
)

func newTestParser() (*Parser, *log.TestLogger) {
	logger := log.NewTestLogger()
	return NewParser(LoggerOption(logger)), logger
}

func TestParseV1(t *testing.T) {
	assert := assert.New(t)
	p, logger := newTestParser()

	res := p.Parse(v1Line, V1)
	parsed, ok := res.(Parsed)
	require.True(t, ok, "unexpected result %#v", res)

	rec := parsed.Record()
	assert.Equal(V1, rec.Version)
	assert.Equal(int64(100), rec.Time.Unix())
	assert.Equal("proj", rec.Project)
	assert.Equal("coll", rec.Collector)
	assert.Equal("64500", rec.PeerASN)
	assert.Equal("1.2.3.4", rec.PeerIP)
	assert.Equal("10.0.0.0/8", rec.Prefix)
	assert.Equal("64500 64501", rec.ASPath)
	assert.Equal("64501", rec.Origin)
	assert.Empty(rec.Communities)

	assert.Equal(map[string]interface{}{
		"time":      int64(100),
		"project":   "proj",
		"collector": "coll",
		"peer_asn":  "64500",
		"peer_ip":   "1.2.3.4",
		"prefix":    "10.0.0.0/8",
		"as_path":   "64500 64501",
		"origin":    "64501",
	}, rec.Fields())
	assert.Empty(logger.Messages)
}

func TestParseV2(t *testing.T) {
	assert := assert.New(t)
	p, logger := newTestParser()

	res := p.Parse(v2Line, V2)
	require.IsType(t, Parsed{}, res)

	rec := res.Record()
	assert.Equal(V2, rec.Version)
	assert.Equal(int64(1438415400), rec.Time.Unix())
	assert.Equal(123456, rec.Time.Nanosecond()/1000)
	assert.Equal("routeviews", rec.Project)
	assert.Equal("route-views2", rec.Collector)
	assert.Equal("3130", rec.PeerASN)
	assert.Equal("147.28.7.1", rec.PeerIP)
	assert.Equal("1.0.0.0/24", rec.Prefix)
	assert.Equal("3130 1239 15169", rec.ASPath)
	assert.Equal("15169", rec.Origin)
	assert.Equal("1239:321 3130:380", rec.Communities)

	fields := rec.Fields()
	assert.InDelta(1438415400.123456, fields["time"], 1e-6)
	assert.Equal("1239:321 3130:380", fields["communities"])
	assert.Len(fields, 9)
	assert.Empty(logger.Messages)
}

func TestParseStripsTrailingWhitespace(t *testing.T) {
	p, _ := newTestParser()
	line := "A|B|100 |proj\t|coll |64500 |1.2.3.4|10.0.0.0/8 |x|64500 64501  |64501 \r\n"
	rec := p.Parse(line, V1).Record()
	require.False(t, rec.IsEmpty())
	assert.Equal(t, "proj", rec.Project)
	assert.Equal(t, "coll", rec.Collector)
	assert.Equal(t, "64500 64501", rec.ASPath)
	assert.Equal(t, "64501", rec.Origin)
}

func TestParseV1OnV2Layout(t *testing.T) {
	// a v2 line read as v1 still has enough fields but its timestamp is
	// fractional, which the v1 integer decoder rejects
	p, _ := newTestParser()
	res := p.Parse(v2Line, V1)
	require.IsType(t, Failed{}, res)
	assert.Equal(t, UndecodableField, res.(Failed).Reason.Kind)
}

func TestParseTooShort(t *testing.T) {
	p, logger := newTestParser()

	short := strings.Join(strings.Split(v1Line, "|")[:10], "|")
	res := p.Parse(short, V1)
	failed, ok := res.(Failed)
	require.True(t, ok)
	assert.True(t, failed.Record().IsEmpty())
	assert.Equal(t, MissingField, failed.Reason.Kind)
	assert.Equal(t, FieldOrigin, failed.Reason.Field)
	assert.Equal(t, len(short), failed.Reason.Offset)

	// 13 fields lack communities at position 13
	short = strings.Join(strings.Split(v2Line, "|")[:13], "|")
	res = p.Parse(short, V2)
	require.IsType(t, Failed{}, res)
	assert.Equal(t, FieldCommunities, res.(Failed).Reason.Field)

	assert.Equal(t, []string{"malformed line", "malformed line"}, logger.Messages["warn"])

	for _, line := range []string{"", "A", "A|B", "A|B|100|proj"} {
		assert.True(t, p.Parse(line, V1).Record().IsEmpty(), line)
		assert.True(t, p.Parse(line, V2).Record().IsEmpty(), line)
	}
}

func TestParseBadTimestamp(t *testing.T) {
	p, logger := newTestParser()

	line := "A|B|abc|proj|coll|64500|1.2.3.4|10.0.0.0/8|5.6.7.8|64500 64501|64501|"
	res := p.Parse(line, V1)
	failed, ok := res.(Failed)
	require.True(t, ok)
	assert.Equal(t, UndecodableField, failed.Reason.Kind)
	assert.Equal(t, FieldTime, failed.Reason.Field)
	assert.Equal(t, 4, failed.Reason.Offset)
	assert.Equal(t, line, failed.Reason.Line)

	var numErr *strconv.NumError
	assert.True(t, errors.As(failed.Reason, &numErr))

	require.Len(t, logger.Fields["warn"], 1)
	fields := logger.Fields["warn"][0]
	assert.Equal(t, "Parser", fields["Topic"])
	assert.Equal(t, "undecodable-field", fields["Key"])
	assert.Equal(t, line, fields["Line"])
	assert.Equal(t, 4, fields["Offset"])
	assert.Equal(t, FieldTime, fields["Field"])

	for _, ts := range []string{"NaN", "+Inf", "12:00", "1e20", "-1e20", "9223372036855"} {
		v2 := strings.Replace(v2Line, "1438415400.123456", ts, 1)
		res := p.Parse(v2, V2)
		require.IsType(t, Failed{}, res, ts)
		assert.Equal(t, UndecodableField, res.(Failed).Reason.Kind, ts)
		assert.Equal(t, FieldTime, res.(Failed).Reason.Field, ts)
	}

	res = p.Parse(strings.Replace(v2Line, "1438415400.123456", "1e20", 1), V2)
	assert.True(t, errors.Is(res.(Failed).Reason, strconv.ErrRange))
}

func TestParseTimestampWhitespace(t *testing.T) {
	p, logger := newTestParser()

	rec := p.Parse("A|B| 100|proj|coll|64500|1.2.3.4|10.0.0.0/8|5.6.7.8|64500 64501|64501|", V1).Record()
	require.False(t, rec.IsEmpty())
	assert.Equal(t, int64(100), rec.Fields()[FieldTime])

	v2 := strings.Replace(v2Line, "1438415400.123456", "\t1438415400.5", 1)
	rec = p.Parse(v2, V2).Record()
	require.False(t, rec.IsEmpty())
	assert.Equal(t, 1438415400.5, rec.Fields()[FieldTime])

	v2 = strings.Replace(v2Line, "1438415400.123456", "-86400", 1)
	rec = p.Parse(v2, V2).Record()
	require.False(t, rec.IsEmpty())
	assert.Equal(t, float64(-86400), rec.Fields()[FieldTime])

	assert.Empty(t, logger.Messages["warn"])
}

func TestParseUnrecognizedSchemaVersion(t *testing.T) {
	p, logger := newTestParser()

	res := p.Parse(v1Line, SchemaVersion(7))
	failed, ok := res.(Failed)
	require.True(t, ok)
	assert.Equal(t, UnrecognizedSchemaVersion, failed.Reason.Kind)
	assert.True(t, failed.Record().IsEmpty())
	assert.Empty(t, failed.Record().Fields())
	assert.Equal(t, []string{"unrecognized schema version"}, logger.Messages["warn"])
}

func TestParseResultSwitch(t *testing.T) {
	p, _ := newTestParser()
	count := func(lines ...string) (parsed, failed int) {
		for _, l := range lines {
			switch p.Parse(l, V1).(type) {
			case Parsed:
				parsed++
			case Failed:
				failed++
			}
		}
		return
	}
	parsed, failed := count(v1Line, "garbage", v1Line, "a|b|c|d|e|f")
	assert.Equal(t, 2, parsed)
	assert.Equal(t, 2, failed)
}

func TestParseConcurrent(t *testing.T) {
	p, _ := newTestParser()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "64501", p.Parse(v1Line, V1).Record().Origin)
				assert.True(t, p.Parse("x|y", V2).Record().IsEmpty())
			}
		}()
	}
	wg.Wait()
}

func TestParseSchemaVersion(t *testing.T) {
	v, err := ParseSchemaVersion("V2")
	require.NoError(t, err)
	assert.Equal(t, V2, v)
	assert.Equal(t, "v2", v.String())

	v, err = ParseSchemaVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, V1, v)

	_, err = ParseSchemaVersion("v3")
	assert.Error(t, err)
}

func TestRecordJSON(t *testing.T) {
	p, _ := newTestParser()
	rec := p.Parse(v1Line, V1).Record()

	buf, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(buf, &m))
	assert.Equal(t, float64(100), m["time"])
	assert.Equal(t, "64501", m["origin"])
}
