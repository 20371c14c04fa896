package chronofmt

import (
	"io"
	"strings"
)

// Millisecond spans of the standard larger units.
const (
	MillisPerSecond = 1000
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour
)

// FieldType identifies a calendar field independent of the engine that
// computes it.
type FieldType int

const (
	FieldEra FieldType = iota
	FieldCenturyOfEra
	FieldYearOfCentury
	FieldYearOfEra
	FieldYear
	FieldWeekyear
	FieldWeekyearOfCentury
	FieldWeekOfWeekyear
	FieldDayOfYear
	FieldMonthOfYear
	FieldDayOfMonth
	FieldDayOfWeek
	FieldHalfdayOfDay
	FieldHourOfHalfday
	FieldClockhourOfHalfday
	FieldClockhourOfDay
	FieldHourOfDay
	FieldMinuteOfDay
	FieldMinuteOfHour
	FieldSecondOfDay
	FieldSecondOfMinute
	FieldMillisOfDay
	FieldMillisOfSecond
	// FieldFraction marks a synthetic field carrying a decimal fraction of a
	// larger unit, expressed in milliseconds of that unit's range.
	FieldFraction
)

// Field is the narrow view of one calendar field, supplied by an external
// calendar engine. Get and Text operate on the local (zone-adjusted)
// millisecond value.
type Field interface {
	Type() FieldType
	Name() string
	Get(localMillis int64) int
	Text(localMillis int64, short bool) string
	MaximumTextLength(short bool) int
}

// Chronology resolves field types to field implementations. It is the sole
// handle the builder keeps on the calendar engine.
type Chronology interface {
	Field(ft FieldType) Field
}

// Zone is the narrow view of a time zone: display names for an instant and
// the offset from UTC in milliseconds.
type Zone interface {
	Name(utcMillis int64, short bool) string
	Offset(utcMillis int64) int
}

// Printer renders an instant to text. utcMillis is the absolute instant,
// localMillis the same instant already adjusted for the effective zone.
// Implementations are immutable and safe for concurrent use.
type Printer interface {
	EstimatePrintedLength() int
	PrintTo(sb *strings.Builder, utcMillis int64, zone Zone, localMillis int64)
}

// Parser consumes text starting at pos and writes field values into the
// bucket. The return value is the new position on success, or the bitwise
// complement of the failure position (see Failure). Implementations are
// immutable and safe for concurrent use, provided each call supplies its
// own bucket.
type Parser interface {
	EstimateParsedLength() int
	ParseInto(b *Bucket, text string, pos int) int
}

// Formatter is an artifact capable of both printing and parsing.
type Formatter interface {
	Printer
	Parser
}

// Print renders the instant to a string, sizing the buffer by the printer's
// estimate.
func Print(p Printer, utcMillis int64, zone Zone, localMillis int64) string {
	var sb strings.Builder
	sb.Grow(p.EstimatePrintedLength())
	p.PrintTo(&sb, utcMillis, zone, localMillis)
	return sb.String()
}

// Write renders the instant to w. The bytes written are identical to those
// produced by Print.
func Write(w io.Writer, p Printer, utcMillis int64, zone Zone, localMillis int64) error {
	_, err := io.WriteString(w, Print(p, utcMillis, zone, localMillis))
	return err
}
