// Package codec wraps compiled chronofmt layouts into wire<->domain
// converters between pattern-formatted strings and time.Time.
package codec

import (
	"context"
	"time"

	chronofmt "github.com/reoring/chronofmt"
	"github.com/reoring/chronofmt/builder"
	"github.com/reoring/chronofmt/gotime"
	"github.com/reoring/chronofmt/i18n"
)

// TimeCodec converts between pattern-formatted strings and time.Time.
type TimeCodec struct {
	formatter chronofmt.Formatter
	chrono    *gotime.Chronology
	zone      *gotime.Zone
	base      time.Time
}

// Pattern compiles the pattern over the stdlib ISO chronology and returns a
// codec rendering and resolving instants in the given zone. A nil zone
// means UTC. Pattern errors surface here, never at Decode/Encode time.
func Pattern(pattern string, zone *gotime.Zone) (*TimeCodec, error) {
	if zone == nil {
		zone = gotime.UTC()
	}
	chrono := gotime.ISO()
	f, err := builder.New(chrono).AppendPattern(pattern).Build()
	if err != nil {
		return nil, err
	}
	return &TimeCodec{
		formatter: f,
		chrono:    chrono,
		zone:      zone,
		base:      time.Unix(0, 0).UTC(),
	}, nil
}

// WithBase sets the instant unparsed fields default to during Decode.
func (c *TimeCodec) WithBase(base time.Time) *TimeCodec {
	cp := *c
	cp.base = base
	return &cp
}

// Encode renders the instant through the compiled layout.
func (c *TimeCodec) Encode(ctx context.Context, t time.Time) (string, error) {
	utc := t.UnixMilli()
	local := utc + int64(c.zone.Offset(utc))
	return chronofmt.Print(c.formatter, utc, c.zone, local), nil
}

// Decode parses the whole input through the compiled layout and resolves
// the accumulated fields into an instant.
func (c *TimeCodec) Decode(ctx context.Context, s string) (time.Time, error) {
	b := chronofmt.NewBucket()
	r := c.formatter.ParseInto(b, s, 0)
	if chronofmt.IsFailure(r) {
		pos := chronofmt.FailurePosition(r)
		return time.Time{}, chronofmt.Issues{{
			Code:    chronofmt.CodeParseError,
			Message: i18n.T(chronofmt.CodeParseError, nil),
			Offset:  pos,
		}}
	}
	if r < len(s) {
		return time.Time{}, chronofmt.Issues{{
			Code:    chronofmt.CodeTruncated,
			Message: i18n.T(chronofmt.CodeTruncated, nil),
			Offset:  r,
		}}
	}

	t, err := c.chrono.Resolve(b, c.base)
	if err != nil {
		return time.Time{}, err
	}
	if _, ok := b.Offset(); !ok {
		// No offset was parsed: interpret the wall time in the codec zone.
		utcGuess := t.UnixMilli()
		t = t.Add(-time.Duration(c.zone.Offset(utcGuess)) * time.Millisecond)
	}
	return t.In(c.zone.Location()), nil
}
