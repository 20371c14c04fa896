package builder

import (
	"strconv"
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// nextToken scans the next pattern token starting at i and returns it along
// with the index of its last consumed character. A token is either a
// maximal run of one repeated ASCII letter, or a literal span prefixed with
// a single quote marker. Inside a literal span a quote toggles quoting, two
// quotes escape a literal quote, and an unquoted letter terminates the span
// (backing up one character). An unterminated quote simply leaves the
// toggle flipped for the rest of the scan.
func nextToken(pattern string, i int) (string, int) {
	var buf strings.Builder
	length := len(pattern)

	c := pattern[i]
	if isPatternLetter(c) {
		// A run of the same letter is a field token.
		buf.WriteByte(c)
		for i+1 < length && pattern[i+1] == c {
			buf.WriteByte(c)
			i++
		}
		return buf.String(), i
	}

	// Mark the token as literal text.
	buf.WriteByte('\'')

	inLiteral := false
	for ; i < length; i++ {
		c = pattern[i]
		switch {
		case c == '\'':
			if i+1 < length && pattern[i+1] == '\'' {
				i++
				buf.WriteByte(c)
			} else {
				inLiteral = !inLiteral
			}
		case !inLiteral && isPatternLetter(c):
			i--
			return buf.String(), i
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String(), i
}

func isPatternLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// isNumericToken reports whether the token compiles to a numeric field, for
// the year-width lookahead.
func isNumericToken(token string) bool {
	if len(token) == 0 {
		return false
	}
	switch token[0] {
	case 'c', 'C', 'x', 'y', 'Y', 'd', 'h', 'H', 'm', 's', 'S',
		'e', 'D', 'F', 'w', 'W', 'k', 'K':
		return true
	case 'M':
		return len(token) <= 2
	}
	return false
}

// AppendPattern compiles a pattern string into layout elements. The syntax
// is compatible with java.text.SimpleDateFormat, with a few more symbols:
//
//	Symbol  Meaning                      Presentation  Examples
//	------  -------                      ------------  -------
//	G       era                          text          AD
//	C       century of era (>=0)         number        20
//	Y       year of era (>=0)            year          1996
//	x       weekyear                     year          1996
//	w       week of weekyear             number        27
//	e       day of week                  number        2
//	E       day of week                  text          Tuesday; Tue
//	y       year                         year          1996
//	D       day of year                  number        189
//	M       month of year                month         July; Jul; 07
//	d       day of month                 number        10
//	a       halfday of day               text          PM
//	K       hour of halfday (0~11)       number        0
//	h       clockhour of halfday (1~12)  number        12
//	H       hour of day (0~23)           number        0
//	k       clockhour of day (1~24)      number        24
//	m       minute of hour               number        30
//	s       second of minute             number        55
//	S       fraction of second           number        978
//	z       time zone                    text          Pacific Standard Time; PST
//	Z       RFC 822 time zone            text          -0800; -08:00
//	'       escape for text              delimiter
//	''      single quote                 literal       '
//
// The count of pattern letters determines the format. Text: 4 or more
// letters select the full form, fewer the short form. Number: the count is
// the minimum printed digit count. Year: a count of 2 selects the
// zero-based year of century. Month: 3 or more letters select text,
// otherwise number. Characters outside ['a'..'z'] and ['A'..'Z'] are
// treated as quoted text; an unrecognized letter records a configuration
// issue carrying its pattern offset.
func (b *Builder) AppendPattern(pattern string) *Builder {
	length := len(pattern)
	for i := 0; i < length; i++ {
		start := i
		token, last := nextToken(pattern, i)
		i = last
		if len(token) == 0 {
			break
		}

		tokenLen := len(token)
		switch c := token[0]; c {
		case 'G': // era designator (text)
			b.AppendEraText()
		case 'C': // century of era (number)
			b.AppendCenturyOfEra(tokenLen, tokenLen)
		case 'x', 'y', 'Y': // weekyear, year, year of era (year)
			b.appendYearLike(c, tokenLen, pattern, i, length)
		case 'M': // month of year (text and number)
			switch {
			case tokenLen >= 4:
				b.AppendMonthOfYearText()
			case tokenLen == 3:
				b.AppendMonthOfYearShortText()
			default:
				b.AppendMonthOfYear(tokenLen)
			}
		case 'd': // day of month (number)
			b.AppendDayOfMonth(tokenLen)
		case 'h': // clockhour of halfday (number, 1..12)
			b.AppendClockhourOfHalfday(tokenLen)
		case 'H': // hour of day (number, 0..23)
			b.AppendHourOfDay(tokenLen)
		case 'm': // minute of hour (number)
			b.AppendMinuteOfHour(tokenLen)
		case 's': // second of minute (number)
			b.AppendSecondOfMinute(tokenLen)
		case 'S': // fraction of second (number)
			b.AppendFractionOfSecond(tokenLen, tokenLen)
		case 'e': // day of week (number)
			b.AppendDayOfWeek(tokenLen)
		case 'E': // day of week (text)
			if tokenLen >= 4 {
				b.AppendDayOfWeekText()
			} else {
				b.AppendDayOfWeekShortText()
			}
		case 'D': // day of year (number)
			b.AppendDayOfYear(tokenLen)
		case 'w': // week of weekyear (number)
			b.AppendWeekOfWeekyear(tokenLen)
		case 'a': // halfday marker (text)
			b.AppendHalfdayOfDayText()
		case 'k': // clockhour of day (number, 1..24)
			b.AppendClockhourOfDay(tokenLen)
		case 'K': // hour of halfday (number, 0..11)
			b.AppendHourOfHalfday(tokenLen)
		case 'z': // time zone (text)
			if tokenLen >= 4 {
				b.AppendZoneName()
			} else {
				b.AppendZoneShortName()
			}
		case 'Z': // RFC 822 time zone
			if tokenLen >= 4 {
				b.AppendZoneOffset("", true, 2, 2)
			} else {
				b.AppendZoneOffset("", false, 2, 2)
			}
		case '\'': // literal text
			sub := token[1:]
			if sub != "" {
				b.AppendLiteral(sub)
			}
		default:
			b.issue(chronofmt.CodeBadPattern, start, map[string]any{"letter": string(c)})
		}
	}
	return b
}

// appendYearLike compiles the year-family letters. A run of exactly 2 binds
// the zero-based year of century (a derived mod-100 field). Any other run
// length allows up to 9 parsed digits to support long years, unless the
// next token is itself numeric, in which case the parse width is clamped to
// the run length so the year cannot swallow the neighbour's digits.
func (b *Builder) appendYearLike(c byte, tokenLen int, pattern string, i, length int) {
	if tokenLen == 2 {
		// A derived remainder field ensures the year of century is
		// zero-based.
		switch c {
		case 'x':
			b.appendCenturyRemainder("weekyearOfCentury", chronofmt.FieldWeekyearOfCentury, chronofmt.FieldWeekyear)
		case 'Y':
			b.appendCenturyRemainder("yearOfCentury", chronofmt.FieldYearOfCentury, chronofmt.FieldYearOfEra)
		default: // 'y'
			b.appendCenturyRemainder("yearOfCentury", chronofmt.FieldYearOfCentury, chronofmt.FieldYear)
		}
		return
	}

	maxDigits := 9
	if i+1 < length {
		// Peek ahead to the next token.
		if peek, _ := nextToken(pattern, i+1); isNumericToken(peek) {
			maxDigits = tokenLen
		}
	}

	switch c {
	case 'x':
		b.AppendWeekyear(tokenLen, maxDigits)
	case 'Y':
		b.AppendYearOfEra(tokenLen, maxDigits)
	default: // 'y'
		b.AppendYear(tokenLen, maxDigits)
	}
}

func (b *Builder) appendCenturyRemainder(name string, typ, base chronofmt.FieldType) {
	f := b.field(base)
	if f == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return
	}
	b.AppendNumeric(newRemainderField(name, typ, f, 100), 2, 2)
}

// remainderField derives a zero-based remainder of a larger field, used for
// the two-digit year of century.
type remainderField struct {
	name    string
	typ     chronofmt.FieldType
	wrapped chronofmt.Field
	divisor int
}

func newRemainderField(name string, typ chronofmt.FieldType, wrapped chronofmt.Field, divisor int) chronofmt.Field {
	return &remainderField{name: name, typ: typ, wrapped: wrapped, divisor: divisor}
}

func (f *remainderField) Type() chronofmt.FieldType { return f.typ }
func (f *remainderField) Name() string              { return f.name }

func (f *remainderField) Get(localMillis int64) int {
	v := f.wrapped.Get(localMillis) % f.divisor
	if v < 0 {
		v += f.divisor
	}
	return v
}

func (f *remainderField) Text(localMillis int64, short bool) string {
	return strconv.Itoa(f.Get(localMillis))
}

func (f *remainderField) MaximumTextLength(short bool) int {
	return len(strconv.Itoa(f.divisor - 1))
}
