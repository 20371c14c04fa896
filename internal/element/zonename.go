package element

import (
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// utcZone is the fallback used when printing a zone name with no zone
// supplied.
type utcZone struct{}

func (utcZone) Name(utcMillis int64, short bool) string {
	if short {
		return "UTC"
	}
	return "Coordinated Universal Time"
}

func (utcZone) Offset(utcMillis int64) int { return 0 }

// ZoneName prints the display name of the effective zone. It has no parser
// role: a layout containing one cannot yield a parser.
type ZoneName struct {
	short bool
}

// NewZoneName returns a zone name element; short selects the abbreviated
// name.
func NewZoneName(short bool) *ZoneName {
	return &ZoneName{short: short}
}

func (e *ZoneName) EstimatePrintedLength() int {
	if e.short {
		return 4
	}
	return 20
}

func (e *ZoneName) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	if zone == nil {
		zone = utcZone{}
	}
	sb.WriteString(zone.Name(utcMillis, e.short))
}
