package element

import (
	"strings"
	"unicode"
	"unicode/utf8"

	chronofmt "github.com/reoring/chronofmt"
)

// TextField prints a field value as locale text and parses a run of letters
// into an unresolved textual assignment.
type TextField struct {
	field chronofmt.Field
	short bool
}

// NewTextField returns a textual element for the field; short selects the
// abbreviated form when printing.
func NewTextField(field chronofmt.Field, short bool) *TextField {
	return &TextField{field: field, short: short}
}

func (e *TextField) EstimatePrintedLength() int {
	return e.field.MaximumTextLength(e.short)
}

func (e *TextField) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	sb.WriteString(e.field.Text(localMillis, e.short))
}

func (e *TextField) EstimateParsedLength() int { return e.EstimatePrintedLength() }

func (e *TextField) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	i := pos
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	if i == pos {
		return chronofmt.Failure(pos)
	}
	b.SaveText(e.field, text[pos:i])
	return i
}
