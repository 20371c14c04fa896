package element

import (
	"math"
	"strconv"
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// fractionField is the synthetic field a Fraction element assigns into the
// bucket: milliseconds into a larger unit's range.
type fractionField struct {
	rangeMillis int
}

func (f fractionField) Type() chronofmt.FieldType { return chronofmt.FieldFraction }
func (f fractionField) Name() string              { return "fraction" }

func (f fractionField) Get(localMillis int64) int {
	r := int64(f.rangeMillis)
	v := localMillis % r
	if v < 0 {
		v += r
	}
	return int(v)
}

func (f fractionField) Text(localMillis int64, short bool) string {
	return strconv.Itoa(f.Get(localMillis))
}

func (f fractionField) MaximumTextLength(short bool) int {
	return len(strconv.Itoa(f.rangeMillis - 1))
}

// Range reports the unit range in milliseconds.
func (f fractionField) Range() int { return f.rangeMillis }

// Fraction prints the remainder of the local time within a unit range as a
// decimal fraction, without the decimal point, and parses it back.
type Fraction struct {
	minDigits   int
	maxDigits   int
	rangeMillis int
	scaler      int64
	field       fractionField
}

// NewFraction returns a fractional element over rangeMillis. The digit count
// is clamped so that rangeMillis multiplied by the scale factor cannot
// overflow int64.
func NewFraction(minDigits, maxDigits, rangeMillis int) *Fraction {
	if maxDigits > 18 {
		maxDigits = 18
	}
	var scaler int64
	for {
		scaler = pow10(maxDigits)
		if (int64(rangeMillis)*scaler)/scaler == int64(rangeMillis) {
			break
		}
		// Overflowed: scale down.
		maxDigits--
	}
	return &Fraction{
		minDigits:   minDigits,
		maxDigits:   maxDigits,
		rangeMillis: rangeMillis,
		scaler:      scaler,
		field:       fractionField{rangeMillis: rangeMillis},
	}
}

func pow10(n int) int64 {
	if n <= 0 {
		return 1
	}
	v := int64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

// MaxDigits reports the effective digit count after the overflow clamp.
func (e *Fraction) MaxDigits() int { return e.maxDigits }

func (e *Fraction) EstimatePrintedLength() int { return e.maxDigits }

func (e *Fraction) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	r := int64(e.rangeMillis)
	var fraction int64
	if localMillis >= 0 {
		fraction = localMillis % r
	} else {
		fraction = r - 1 + (localMillis+1)%r
	}

	minDigits := e.minDigits
	if fraction == 0 {
		for ; minDigits > 0; minDigits-- {
			sb.WriteByte('0')
		}
		return
	}

	str := strconv.FormatInt(fraction*e.scaler/r, 10)
	digits := e.maxDigits
	for len(str) < digits {
		sb.WriteByte('0')
		minDigits--
		digits--
	}

	// Chop off as many trailing zero digits as necessary, but never below
	// the minimum digit count.
	length := len(str)
	for minDigits < digits {
		if length <= 1 || str[length-1] != '0' {
			break
		}
		digits--
		length--
	}
	sb.WriteString(str[:length])
}

func (e *Fraction) EstimateParsedLength() int { return e.maxDigits }

func (e *Fraction) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	limit := len(text) - pos
	if limit > e.maxDigits {
		limit = e.maxDigits
	}

	var value int64
	n := int64(e.rangeMillis)
	length := 0
	for length < limit {
		c := text[pos+length]
		if c < '0' || c > '9' {
			break
		}
		length++
		if c != '0' {
			value += int64(c-'0') * n / 10
		}
		n /= 10
	}

	if length == 0 {
		return chronofmt.Failure(pos)
	}
	if value > math.MaxInt32 {
		return chronofmt.Failure(pos)
	}

	b.SaveField(e.field, int(value))
	return pos + length
}
