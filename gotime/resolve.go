package gotime

import (
	"strings"
	"time"

	chronofmt "github.com/reoring/chronofmt"
	"github.com/reoring/chronofmt/i18n"
)

// Resolve turns the field values accumulated in a bucket into an instant,
// starting from base and overlaying assignments in assignment order. A raw
// zone offset recorded in the bucket shifts the resolved wall time back to
// UTC. Field types outside the supported date/time set, and textual values
// that match no known name, yield Issues.
func (c *Chronology) Resolve(b *chronofmt.Bucket, base time.Time) (time.Time, error) {
	base = base.UTC()
	year, month, day := base.Date()
	hour, minute, sec := base.Clock()
	millis := base.Nanosecond() / 1e6

	halfday := -1     // 0=AM, 1=PM, applied after the loop
	halfdayHour := -1 // hour within the halfday, if assigned
	var iss chronofmt.Issues

	unsupported := func(e chronofmt.FieldEntry) {
		iss = chronofmt.AppendIssues(iss, chronofmt.Issue{
			Code:    chronofmt.CodeUnsupportedField,
			Message: i18n.T(chronofmt.CodeUnsupportedField, map[string]string{"field": e.Field.Name()}),
			Offset:  -1,
			Params:  map[string]any{"field": e.Field.Name()},
		})
	}

	for _, e := range b.Entries() {
		if e.IsText {
			if !c.resolveText(e, &year, &month, &halfday) {
				unsupported(e)
			}
			continue
		}
		switch e.Field.Type() {
		case chronofmt.FieldYear:
			year = e.Value
		case chronofmt.FieldYearOfEra:
			year = e.Value
		case chronofmt.FieldYearOfCentury:
			// Pivot on the base year's century.
			year = year - year%100 + e.Value
		case chronofmt.FieldMonthOfYear:
			month = time.Month(e.Value)
		case chronofmt.FieldDayOfMonth:
			day = e.Value
		case chronofmt.FieldDayOfYear:
			month = time.January
			day = e.Value
		case chronofmt.FieldHourOfDay:
			hour = e.Value
		case chronofmt.FieldClockhourOfDay:
			hour = e.Value % 24
		case chronofmt.FieldHourOfHalfday:
			halfdayHour = e.Value
		case chronofmt.FieldClockhourOfHalfday:
			halfdayHour = e.Value % 12
		case chronofmt.FieldMinuteOfHour:
			minute = e.Value
		case chronofmt.FieldSecondOfMinute:
			sec = e.Value
		case chronofmt.FieldMillisOfSecond:
			millis = e.Value
		case chronofmt.FieldMillisOfDay:
			hour = e.Value / chronofmt.MillisPerHour
			minute = e.Value / chronofmt.MillisPerMinute % 60
			sec = e.Value / chronofmt.MillisPerSecond % 60
			millis = e.Value % chronofmt.MillisPerSecond
		case chronofmt.FieldSecondOfDay:
			hour = e.Value / 3600
			minute = e.Value / 60 % 60
			sec = e.Value % 60
		case chronofmt.FieldMinuteOfDay:
			hour = e.Value / 60
			minute = e.Value % 60
		case chronofmt.FieldHalfdayOfDay:
			halfday = e.Value
		case chronofmt.FieldFraction:
			// Only a fraction of one second maps cleanly onto an instant.
			if r, ok := e.Field.(interface{ Range() int }); ok && r.Range() == chronofmt.MillisPerSecond {
				millis = e.Value
			} else {
				unsupported(e)
			}
		case chronofmt.FieldEra, chronofmt.FieldDayOfWeek:
			// Redundant with the other fields; ignored.
		default:
			unsupported(e)
		}
	}

	if halfdayHour >= 0 {
		hour = halfdayHour
		if halfday < 0 {
			halfday = 0
		}
	}
	if halfday == 1 && hour < 12 {
		hour += 12
	} else if halfday == 0 && hour >= 12 {
		hour -= 12
	}

	if len(iss) > 0 {
		return time.Time{}, iss
	}

	t := time.Date(year, month, day, hour, minute, sec, millis*1e6, time.UTC)
	if off, ok := b.Offset(); ok {
		t = t.Add(-time.Duration(off) * time.Millisecond)
	}
	return t, nil
}

// resolveText resolves a textual assignment against the English names this
// chronology prints.
func (c *Chronology) resolveText(e chronofmt.FieldEntry, year *int, month *time.Month, halfday *int) bool {
	text := e.Text
	switch e.Field.Type() {
	case chronofmt.FieldMonthOfYear:
		for m := time.January; m <= time.December; m++ {
			if strings.EqualFold(text, m.String()) || strings.EqualFold(text, m.String()[:3]) {
				*month = m
				return true
			}
		}
	case chronofmt.FieldHalfdayOfDay:
		switch {
		case strings.EqualFold(text, "AM"):
			*halfday = 0
			return true
		case strings.EqualFold(text, "PM"):
			*halfday = 1
			return true
		}
	case chronofmt.FieldEra:
		if strings.EqualFold(text, "BC") {
			*year = 1 - *year
			return true
		}
		if strings.EqualFold(text, "AD") {
			return true
		}
	case chronofmt.FieldDayOfWeek:
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.EqualFold(text, d.String()) || strings.EqualFold(text, d.String()[:3]) {
				// Redundant with the date fields; accepted and ignored.
				return true
			}
		}
	}
	return false
}
