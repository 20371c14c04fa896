package gotime

import (
	"time"

	chronofmt "github.com/reoring/chronofmt"
)

// Zone wraps a *time.Location as a chronofmt.Zone.
type Zone struct {
	loc *time.Location
}

// NewZone adapts loc; a nil loc means UTC.
func NewZone(loc *time.Location) *Zone {
	if loc == nil {
		loc = time.UTC
	}
	return &Zone{loc: loc}
}

// UTC returns the UTC zone.
func UTC() *Zone { return NewZone(time.UTC) }

// FixedZone returns a zone at a fixed millisecond offset from UTC.
func FixedZone(name string, offsetMillis int) *Zone {
	return NewZone(time.FixedZone(name, offsetMillis/1000))
}

// Location exposes the wrapped location.
func (z *Zone) Location() *time.Location { return z.loc }

// Name reports the zone abbreviation in effect at the instant. The long
// form falls back to the location name, which is the closest stdlib time
// offers to a display name.
func (z *Zone) Name(utcMillis int64, short bool) string {
	t := time.UnixMilli(utcMillis).In(z.loc)
	abbr, _ := t.Zone()
	if short {
		return abbr
	}
	if s := z.loc.String(); s != "" && s != "Local" {
		return s
	}
	return abbr
}

// Offset reports the offset from UTC in milliseconds at the instant.
func (z *Zone) Offset(utcMillis int64) int {
	t := time.UnixMilli(utcMillis).In(z.loc)
	_, sec := t.Zone()
	return sec * 1000
}

var _ chronofmt.Zone = (*Zone)(nil)
