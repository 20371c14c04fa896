// Package element holds the primitive printer/parser elements a layout is
// compiled from. Every element is an immutable value constructed once by the
// builder; printing and parsing hold no element state.
package element

import (
	"strconv"
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// Slot is one (printer, parser) pair position of a layout. Either half may
// be absent independently; an element implementing both roles is installed
// into both halves of the same slot.
type Slot struct {
	Printer chronofmt.Printer
	Parser  chronofmt.Parser
	// Same marks a slot whose halves are one and the same element, letting
	// the builder hand the element out directly instead of wrapping it.
	Same bool
}

// appendUnpaddedInt writes the decimal digits of v with no leading zeros.
func appendUnpaddedInt(sb *strings.Builder, v int) {
	sb.WriteString(strconv.Itoa(v))
}

// appendPaddedInt writes v zero-padded to at least width digits, keeping a
// leading minus outside the padding.
func appendPaddedInt(sb *strings.Builder, v int, width int) {
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for n := width - len(s); n > 0; n-- {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}

// parseTwoDigits converts exactly two ASCII digits at pos. The caller has
// already verified both characters are digits.
func parseTwoDigits(text string, pos int) int {
	return int(text[pos]-'0')*10 + int(text[pos+1]-'0')
}

// digitCount returns how many of the next amount characters are ASCII
// digits.
func digitCount(text string, pos, amount int) int {
	limit := len(text) - pos
	if limit > amount {
		limit = amount
	}
	n := 0
	for ; n < limit; n++ {
		c := text[pos+n]
		if c < '0' || c > '9' {
			break
		}
	}
	return n
}
