package element

import (
	"strings"
	"unicode"
	"unicode/utf8"

	chronofmt "github.com/reoring/chronofmt"
)

// CharLiteral prints a fixed character and parses it case-insensitively.
type CharLiteral struct {
	value rune
}

// NewCharLiteral returns a single-character literal element.
func NewCharLiteral(value rune) *CharLiteral {
	return &CharLiteral{value: value}
}

func (e *CharLiteral) EstimatePrintedLength() int { return utf8.RuneLen(e.value) }

func (e *CharLiteral) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	sb.WriteRune(e.value)
}

func (e *CharLiteral) EstimateParsedLength() int { return utf8.RuneLen(e.value) }

func (e *CharLiteral) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	if pos >= len(text) {
		return chronofmt.Failure(pos)
	}
	a, size := utf8.DecodeRuneInString(text[pos:])
	v := e.value
	if a != v && unicode.ToUpper(a) != unicode.ToUpper(v) && unicode.ToLower(a) != unicode.ToLower(v) {
		return chronofmt.Failure(pos)
	}
	return pos + size
}

// StringLiteral prints fixed text and parses it case-insensitively.
type StringLiteral struct {
	value string
}

// NewStringLiteral returns a multi-character literal element.
func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{value: value}
}

func (e *StringLiteral) EstimatePrintedLength() int { return len(e.value) }

func (e *StringLiteral) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	sb.WriteString(e.value)
}

func (e *StringLiteral) EstimateParsedLength() int { return len(e.value) }

func (e *StringLiteral) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	end := pos + len(e.value)
	if end > len(text) || !strings.EqualFold(text[pos:end], e.value) {
		return chronofmt.Failure(pos)
	}
	return end
}
