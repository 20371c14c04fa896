package element

import (
	"strconv"
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// numberParser is the shared parse half of the numeric elements. It scans up
// to maxParsedDigits digit characters, plus one extra slot for a sign when
// the field is signed, and saves the converted value into the bucket.
type numberParser struct {
	field           chronofmt.Field
	maxParsedDigits int
	signed          bool
}

func (e *numberParser) EstimateParsedLength() int { return e.maxParsedDigits }

func (e *numberParser) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	limit := len(text) - pos
	if limit > e.maxParsedDigits {
		limit = e.maxParsedDigits
	}

	negative := false
	length := 0
	for length < limit {
		c := text[pos+length]
		if length == 0 && (c == '-' || c == '+') && e.signed {
			negative = c == '-'
			if negative {
				length++
			} else {
				// Skip the '+' so the digit conversion below never sees it.
				pos++
			}
			// Expand the limit to disregard the sign character.
			limit++
			if limit > len(text)-pos {
				limit = len(text) - pos
			}
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		length++
	}

	if length == 0 {
		return chronofmt.Failure(pos)
	}

	var value int
	switch {
	case length == 3 && negative:
		value = -parseTwoDigits(text, pos+1)
	case length == 2:
		if negative {
			value = -int(text[pos+1] - '0')
		} else {
			value = parseTwoDigits(text, pos)
		}
	case length == 1 && !negative:
		value = int(text[pos] - '0')
	default:
		v, err := strconv.Atoi(text[pos : pos+length])
		if err != nil {
			return chronofmt.Failure(pos)
		}
		value = v
	}

	b.SaveField(e.field, value)
	return pos + length
}

// UnpaddedNumber prints a field value with no leading zeros and parses an
// optionally signed digit run.
type UnpaddedNumber struct {
	numberParser
}

// NewUnpaddedNumber returns a numeric element with no print padding.
func NewUnpaddedNumber(field chronofmt.Field, maxParsedDigits int, signed bool) *UnpaddedNumber {
	return &UnpaddedNumber{numberParser{field: field, maxParsedDigits: maxParsedDigits, signed: signed}}
}

func (e *UnpaddedNumber) EstimatePrintedLength() int { return e.maxParsedDigits }

func (e *UnpaddedNumber) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	appendUnpaddedInt(sb, e.field.Get(localMillis))
}

// PaddedNumber prints a field value zero-padded to a minimum width and
// parses an optionally signed digit run.
type PaddedNumber struct {
	numberParser
	minPrintedDigits int
}

// NewPaddedNumber returns a numeric element padded to minPrintedDigits when
// printing.
func NewPaddedNumber(field chronofmt.Field, maxParsedDigits int, signed bool, minPrintedDigits int) *PaddedNumber {
	return &PaddedNumber{
		numberParser:     numberParser{field: field, maxParsedDigits: maxParsedDigits, signed: signed},
		minPrintedDigits: minPrintedDigits,
	}
}

func (e *PaddedNumber) EstimatePrintedLength() int { return e.maxParsedDigits }

func (e *PaddedNumber) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	appendPaddedInt(sb, e.field.Get(localMillis), e.minPrintedDigits)
}
