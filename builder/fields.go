package builder

import (
	chronofmt "github.com/reoring/chronofmt"
	"github.com/reoring/chronofmt/internal/element"
)

func (b *Builder) field(ft chronofmt.FieldType) chronofmt.Field {
	if b.chrono == nil {
		return nil
	}
	return b.chrono.Field(ft)
}

// AppendLiteral instructs the printer to emit specific text, and the parser
// to expect it. The parser is case-insensitive. A single-character text is
// stored as a character literal.
func (b *Builder) AppendLiteral(text string) *Builder {
	if text == "" {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	runes := []rune(text)
	if len(runes) == 1 {
		return b.appendBoth(element.NewCharLiteral(runes[0]))
	}
	return b.appendBoth(element.NewStringLiteral(text))
}

// AppendRuneLiteral instructs the printer to emit a specific character, and
// the parser to expect it. The parser is case-insensitive.
func (b *Builder) AppendRuneLiteral(r rune) *Builder {
	return b.appendBoth(element.NewCharLiteral(r))
}

// AppendNumeric instructs the printer to emit a field value as a decimal
// number, and the parser to expect an unsigned decimal number. minDigits is
// the minimum number of digits to print; maxDigits the maximum number of
// digits to parse, and the estimated maximum to print.
func (b *Builder) AppendNumeric(field chronofmt.Field, minDigits, maxDigits int) *Builder {
	return b.appendNumeric(field, minDigits, maxDigits, false)
}

// AppendSignedNumeric is AppendNumeric with a signed parser.
func (b *Builder) AppendSignedNumeric(field chronofmt.Field, minDigits, maxDigits int) *Builder {
	return b.appendNumeric(field, minDigits, maxDigits, true)
}

func (b *Builder) appendNumeric(field chronofmt.Field, minDigits, maxDigits int, signed bool) *Builder {
	if field == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	if minDigits < 0 || maxDigits <= 0 {
		b.issue(chronofmt.CodeInvalidDigits, -1, map[string]any{"min": minDigits, "max": maxDigits})
		return b
	}
	if minDigits <= 1 {
		return b.appendBoth(element.NewUnpaddedNumber(field, maxDigits, signed))
	}
	return b.appendBoth(element.NewPaddedNumber(field, maxDigits, signed, minDigits))
}

// AppendText instructs the printer to emit a field value as text, and the
// parser to expect text.
func (b *Builder) AppendText(field chronofmt.Field) *Builder {
	if field == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendBoth(element.NewTextField(field, false))
}

// AppendShortText instructs the printer to emit a field value as short
// text, and the parser to expect text.
func (b *Builder) AppendShortText(field chronofmt.Field) *Builder {
	if field == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendBoth(element.NewTextField(field, true))
}

// AppendFraction instructs the printer to emit a remainder of time as a
// decimal fraction, sans decimal point. For example, if the range is 60000
// (milliseconds in one minute) and the time is 12:30:45, the value printed
// is 75: the implied fraction is 0.75 of a minute.
func (b *Builder) AppendFraction(minDigits, maxDigits, rangeMillis int) *Builder {
	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	if minDigits < 0 || maxDigits <= 0 || rangeMillis <= 0 {
		b.issue(chronofmt.CodeInvalidDigits, -1, map[string]any{"min": minDigits, "max": maxDigits})
		return b
	}
	return b.appendBoth(element.NewFraction(minDigits, maxDigits, rangeMillis))
}

// AppendFractionOfSecond appends a fraction over one second.
func (b *Builder) AppendFractionOfSecond(minDigits, maxDigits int) *Builder {
	return b.AppendFraction(minDigits, maxDigits, chronofmt.MillisPerSecond)
}

// AppendFractionOfMinute appends a fraction over one minute.
func (b *Builder) AppendFractionOfMinute(minDigits, maxDigits int) *Builder {
	return b.AppendFraction(minDigits, maxDigits, chronofmt.MillisPerMinute)
}

// AppendFractionOfHour appends a fraction over one hour.
func (b *Builder) AppendFractionOfHour(minDigits, maxDigits int) *Builder {
	return b.AppendFraction(minDigits, maxDigits, chronofmt.MillisPerHour)
}

// AppendFractionOfDay appends a fraction over one day.
func (b *Builder) AppendFractionOfDay(minDigits, maxDigits int) *Builder {
	return b.AppendFraction(minDigits, maxDigits, chronofmt.MillisPerDay)
}

// AppendMillisOfSecond appends a numeric millisOfSecond field.
func (b *Builder) AppendMillisOfSecond(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldMillisOfSecond), minDigits, 3)
}

// AppendMillisOfDay appends a numeric millisOfDay field.
func (b *Builder) AppendMillisOfDay(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldMillisOfDay), minDigits, 8)
}

// AppendSecondOfMinute appends a numeric secondOfMinute field.
func (b *Builder) AppendSecondOfMinute(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldSecondOfMinute), minDigits, 2)
}

// AppendSecondOfDay appends a numeric secondOfDay field.
func (b *Builder) AppendSecondOfDay(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldSecondOfDay), minDigits, 5)
}

// AppendMinuteOfHour appends a numeric minuteOfHour field.
func (b *Builder) AppendMinuteOfHour(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldMinuteOfHour), minDigits, 2)
}

// AppendMinuteOfDay appends a numeric minuteOfDay field.
func (b *Builder) AppendMinuteOfDay(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldMinuteOfDay), minDigits, 4)
}

// AppendHourOfDay appends a numeric hourOfDay (0..23) field.
func (b *Builder) AppendHourOfDay(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldHourOfDay), minDigits, 2)
}

// AppendClockhourOfDay appends a numeric clockhourOfDay (1..24) field.
func (b *Builder) AppendClockhourOfDay(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldClockhourOfDay), minDigits, 2)
}

// AppendHourOfHalfday appends a numeric hourOfHalfday (0..11) field.
func (b *Builder) AppendHourOfHalfday(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldHourOfHalfday), minDigits, 2)
}

// AppendClockhourOfHalfday appends a numeric clockhourOfHalfday (1..12)
// field.
func (b *Builder) AppendClockhourOfHalfday(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldClockhourOfHalfday), minDigits, 2)
}

// AppendDayOfWeek appends a numeric dayOfWeek field.
func (b *Builder) AppendDayOfWeek(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldDayOfWeek), minDigits, 1)
}

// AppendDayOfMonth appends a numeric dayOfMonth field.
func (b *Builder) AppendDayOfMonth(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldDayOfMonth), minDigits, 2)
}

// AppendDayOfYear appends a numeric dayOfYear field.
func (b *Builder) AppendDayOfYear(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldDayOfYear), minDigits, 3)
}

// AppendWeekOfWeekyear appends a numeric weekOfWeekyear field.
func (b *Builder) AppendWeekOfWeekyear(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldWeekOfWeekyear), minDigits, 2)
}

// AppendWeekyear appends a numeric weekyear field.
func (b *Builder) AppendWeekyear(minDigits, maxDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldWeekyear), minDigits, maxDigits)
}

// AppendMonthOfYear appends a numeric monthOfYear field.
func (b *Builder) AppendMonthOfYear(minDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldMonthOfYear), minDigits, 2)
}

// AppendYear appends a numeric year field, parsed with an optional sign.
func (b *Builder) AppendYear(minDigits, maxDigits int) *Builder {
	return b.AppendSignedNumeric(b.field(chronofmt.FieldYear), minDigits, maxDigits)
}

// AppendYearOfEra appends a numeric yearOfEra field.
func (b *Builder) AppendYearOfEra(minDigits, maxDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldYearOfEra), minDigits, maxDigits)
}

// AppendYearOfCentury appends a numeric yearOfCentury field.
func (b *Builder) AppendYearOfCentury(minDigits, maxDigits int) *Builder {
	return b.AppendNumeric(b.field(chronofmt.FieldYearOfCentury), minDigits, maxDigits)
}

// AppendCenturyOfEra appends a numeric centuryOfEra field, parsed with an
// optional sign.
func (b *Builder) AppendCenturyOfEra(minDigits, maxDigits int) *Builder {
	return b.AppendSignedNumeric(b.field(chronofmt.FieldCenturyOfEra), minDigits, maxDigits)
}

// AppendHalfdayOfDayText appends halfday (AM/PM) text.
func (b *Builder) AppendHalfdayOfDayText() *Builder {
	return b.AppendText(b.field(chronofmt.FieldHalfdayOfDay))
}

// AppendDayOfWeekText appends full dayOfWeek text.
func (b *Builder) AppendDayOfWeekText() *Builder {
	return b.AppendText(b.field(chronofmt.FieldDayOfWeek))
}

// AppendDayOfWeekShortText appends abbreviated dayOfWeek text.
func (b *Builder) AppendDayOfWeekShortText() *Builder {
	return b.AppendShortText(b.field(chronofmt.FieldDayOfWeek))
}

// AppendMonthOfYearText appends full monthOfYear text.
func (b *Builder) AppendMonthOfYearText() *Builder {
	return b.AppendText(b.field(chronofmt.FieldMonthOfYear))
}

// AppendMonthOfYearShortText appends abbreviated monthOfYear text.
func (b *Builder) AppendMonthOfYearShortText() *Builder {
	return b.AppendShortText(b.field(chronofmt.FieldMonthOfYear))
}

// AppendEraText appends era (AD/BC) text.
func (b *Builder) AppendEraText() *Builder {
	return b.AppendText(b.field(chronofmt.FieldEra))
}

// AppendZoneName instructs the printer to emit the full zone name. A parser
// cannot be built from a layout containing a zone name.
func (b *Builder) AppendZoneName() *Builder {
	return b.AppendPrinter(element.NewZoneName(false))
}

// AppendZoneShortName instructs the printer to emit the abbreviated zone
// name. A parser cannot be built from a layout containing a zone name.
func (b *Builder) AppendZoneShortName() *Builder {
	return b.AppendPrinter(element.NewZoneName(true))
}

// AppendZoneOffset appends the zone offset from UTC. zeroOffsetText, when
// non-empty, replaces a zero offset entirely. showSeparators inserts ':'
// before minutes and seconds and '.' before the sub-second part. minFields
// and maxFields bound how many of hours/minutes/seconds/sub-second are
// emitted (1..4).
func (b *Builder) AppendZoneOffset(zeroOffsetText string, showSeparators bool, minFields, maxFields int) *Builder {
	if minFields <= 0 || maxFields < minFields {
		b.issue(chronofmt.CodeInvalidDigits, -1, map[string]any{"min": minFields, "max": maxFields})
		return b
	}
	return b.appendBoth(element.NewZoneOffset(zeroOffsetText, showSeparators, minFields, maxFields))
}
