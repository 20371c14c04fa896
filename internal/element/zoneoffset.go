package element

import (
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// ZoneOffset prints and parses the offset from UTC: a sign, two-digit
// hours, then progressively minutes, seconds and a three-digit sub-second
// part, bounded by the configured field counts. An empty zeroOffsetText
// means the offset is always shown.
type ZoneOffset struct {
	zeroOffsetText string
	showSeparators bool
	minFields      int
	maxFields      int
}

// NewZoneOffset returns an offset element. minFields and maxFields count in
// 1=hours, 2=minutes, 3=seconds, 4=sub-second and are clamped to at most 4;
// the caller has validated minFields > 0 and maxFields >= minFields.
func NewZoneOffset(zeroOffsetText string, showSeparators bool, minFields, maxFields int) *ZoneOffset {
	if minFields > 4 {
		minFields = 4
		maxFields = 4
	}
	return &ZoneOffset{
		zeroOffsetText: zeroOffsetText,
		showSeparators: showSeparators,
		minFields:      minFields,
		maxFields:      maxFields,
	}
}

func (e *ZoneOffset) EstimatePrintedLength() int {
	est := (1 + e.minFields) << 1
	if e.showSeparators {
		est += e.minFields - 1
	}
	if len(e.zeroOffsetText) > est {
		est = len(e.zeroOffsetText)
	}
	return est
}

func (e *ZoneOffset) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	offset := int(localMillis - utcMillis)

	if offset == 0 && e.zeroOffsetText != "" {
		sb.WriteString(e.zeroOffsetText)
		return
	}
	if offset >= 0 {
		sb.WriteByte('+')
	} else {
		sb.WriteByte('-')
		offset = -offset
	}

	hours := offset / chronofmt.MillisPerHour
	appendPaddedInt(sb, hours, 2)
	if e.maxFields == 1 {
		return
	}
	offset -= hours * chronofmt.MillisPerHour
	if offset == 0 && e.minFields <= 1 {
		return
	}

	minutes := offset / chronofmt.MillisPerMinute
	if e.showSeparators {
		sb.WriteByte(':')
	}
	appendPaddedInt(sb, minutes, 2)
	if e.maxFields == 2 {
		return
	}
	offset -= minutes * chronofmt.MillisPerMinute
	if offset == 0 && e.minFields <= 2 {
		return
	}

	seconds := offset / chronofmt.MillisPerSecond
	if e.showSeparators {
		sb.WriteByte(':')
	}
	appendPaddedInt(sb, seconds, 2)
	if e.maxFields == 3 {
		return
	}
	offset -= seconds * chronofmt.MillisPerSecond
	if offset == 0 && e.minFields <= 3 {
		return
	}

	if e.showSeparators {
		sb.WriteByte('.')
	}
	appendPaddedInt(sb, offset, 3)
}

func (e *ZoneOffset) EstimateParsedLength() int { return e.EstimatePrintedLength() }

func (e *ZoneOffset) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	if e.zeroOffsetText != "" {
		end := pos + len(e.zeroOffsetText)
		if end <= len(text) && strings.EqualFold(text[pos:end], e.zeroOffsetText) {
			b.SetOffset(0)
			return end
		}
	}

	// Expect a sign character followed by at least one digit.
	limit := len(text) - pos
	if limit <= 1 {
		return chronofmt.Failure(pos)
	}

	var negative bool
	switch text[pos] {
	case '-':
		negative = true
	case '+':
		negative = false
	default:
		return chronofmt.Failure(pos)
	}

	limit--
	pos++

	// The remainder is one of: hh, hhmm, hhmmss, hhmmssSSS, hh:mm,
	// hh:mm:ss, hh:mm:ss.SSS.

	if digitCount(text, pos, 2) < 2 {
		// Need two digits for hour.
		return chronofmt.Failure(pos)
	}

	hours := parseTwoDigits(text, pos)
	if hours > 23 {
		return chronofmt.Failure(pos)
	}
	offset := hours * chronofmt.MillisPerHour
	limit -= 2
	pos += 2

	done := func() int {
		if negative {
			offset = -offset
		}
		b.SetOffset(offset)
		return pos
	}

	// Decide now whether separators are expected or parsing stops at the
	// hour field.
	if limit <= 0 {
		return done()
	}

	var expectSeparators bool
	switch c := text[pos]; {
	case c == ':':
		expectSeparators = true
		limit--
		pos++
	case c >= '0' && c <= '9':
		expectSeparators = false
	default:
		return done()
	}

	// Minutes.
	count := digitCount(text, pos, 2)
	if count == 0 && !expectSeparators {
		return done()
	}
	if count < 2 {
		// Need two digits for minute.
		return chronofmt.Failure(pos)
	}

	minutes := parseTwoDigits(text, pos)
	if minutes > 59 {
		return chronofmt.Failure(pos)
	}
	offset += minutes * chronofmt.MillisPerMinute
	limit -= 2
	pos += 2

	// Seconds.
	if limit <= 0 {
		return done()
	}
	if expectSeparators {
		if text[pos] != ':' {
			return done()
		}
		limit--
		pos++
	}

	count = digitCount(text, pos, 2)
	if count == 0 && !expectSeparators {
		return done()
	}
	if count < 2 {
		// Need two digits for second.
		return chronofmt.Failure(pos)
	}

	seconds := parseTwoDigits(text, pos)
	if seconds > 59 {
		return chronofmt.Failure(pos)
	}
	offset += seconds * chronofmt.MillisPerSecond
	limit -= 2
	pos += 2

	// Sub-second remainder.
	if limit <= 0 {
		return done()
	}
	if expectSeparators {
		if text[pos] != '.' {
			return done()
		}
		limit--
		pos++
	}

	count = digitCount(text, pos, 3)
	if count == 0 && !expectSeparators {
		return done()
	}
	if count < 1 {
		// Need at least one digit after the separator.
		return chronofmt.Failure(pos)
	}

	offset += int(text[pos]-'0') * 100
	pos++
	if count > 1 {
		offset += int(text[pos]-'0') * 10
		pos++
		if count > 2 {
			offset += int(text[pos] - '0')
			pos++
		}
	}

	return done()
}
