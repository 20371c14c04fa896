// Package gotime adapts the standard library time package to the chronofmt
// collaborator interfaces: an ISO chronology whose fields are computed by
// decomposing instants with time.Time, zones wrapping *time.Location, and a
// resolver that turns parsed buckets back into instants.
package gotime

import (
	"strconv"
	"time"

	chronofmt "github.com/reoring/chronofmt"
)

// Chronology is the ISO calendar backed by stdlib time, with English field
// text.
type Chronology struct{}

// ISO returns the stdlib-backed ISO chronology.
func ISO() *Chronology { return &Chronology{} }

// Field resolves a field type, or returns nil for the synthetic types no
// chronology provides directly.
func (c *Chronology) Field(ft chronofmt.FieldType) chronofmt.Field {
	switch ft {
	case chronofmt.FieldFraction:
		return nil
	default:
		return field{typ: ft}
	}
}

// field computes one ISO field by decomposing the local instant in UTC.
type field struct {
	typ chronofmt.FieldType
}

func (f field) Type() chronofmt.FieldType { return f.typ }

var fieldNames = map[chronofmt.FieldType]string{
	chronofmt.FieldEra:                "era",
	chronofmt.FieldCenturyOfEra:       "centuryOfEra",
	chronofmt.FieldYearOfCentury:      "yearOfCentury",
	chronofmt.FieldYearOfEra:          "yearOfEra",
	chronofmt.FieldYear:               "year",
	chronofmt.FieldWeekyear:           "weekyear",
	chronofmt.FieldWeekyearOfCentury:  "weekyearOfCentury",
	chronofmt.FieldWeekOfWeekyear:     "weekOfWeekyear",
	chronofmt.FieldDayOfYear:          "dayOfYear",
	chronofmt.FieldMonthOfYear:        "monthOfYear",
	chronofmt.FieldDayOfMonth:         "dayOfMonth",
	chronofmt.FieldDayOfWeek:          "dayOfWeek",
	chronofmt.FieldHalfdayOfDay:       "halfdayOfDay",
	chronofmt.FieldHourOfHalfday:      "hourOfHalfday",
	chronofmt.FieldClockhourOfHalfday: "clockhourOfHalfday",
	chronofmt.FieldClockhourOfDay:     "clockhourOfDay",
	chronofmt.FieldHourOfDay:          "hourOfDay",
	chronofmt.FieldMinuteOfDay:        "minuteOfDay",
	chronofmt.FieldMinuteOfHour:       "minuteOfHour",
	chronofmt.FieldSecondOfDay:        "secondOfDay",
	chronofmt.FieldSecondOfMinute:     "secondOfMinute",
	chronofmt.FieldMillisOfDay:        "millisOfDay",
	chronofmt.FieldMillisOfSecond:     "millisOfSecond",
}

func (f field) Name() string {
	if n, ok := fieldNames[f.typ]; ok {
		return n
	}
	return "unknown"
}

func (f field) Get(localMillis int64) int {
	t := time.UnixMilli(localMillis).UTC()
	switch f.typ {
	case chronofmt.FieldEra:
		if t.Year() <= 0 {
			return 0
		}
		return 1
	case chronofmt.FieldCenturyOfEra:
		y := t.Year()
		if y <= 0 {
			y = 1 - y
		}
		return y / 100
	case chronofmt.FieldYearOfCentury:
		return f.eraYear(t) % 100
	case chronofmt.FieldYearOfEra:
		return f.eraYear(t)
	case chronofmt.FieldYear:
		return t.Year()
	case chronofmt.FieldWeekyear:
		y, _ := t.ISOWeek()
		return y
	case chronofmt.FieldWeekyearOfCentury:
		y, _ := t.ISOWeek()
		return y % 100
	case chronofmt.FieldWeekOfWeekyear:
		_, w := t.ISOWeek()
		return w
	case chronofmt.FieldDayOfYear:
		return t.YearDay()
	case chronofmt.FieldMonthOfYear:
		return int(t.Month())
	case chronofmt.FieldDayOfMonth:
		return t.Day()
	case chronofmt.FieldDayOfWeek:
		// ISO numbering: Monday=1 .. Sunday=7.
		if wd := int(t.Weekday()); wd == 0 {
			return 7
		} else {
			return wd
		}
	case chronofmt.FieldHalfdayOfDay:
		return t.Hour() / 12
	case chronofmt.FieldHourOfHalfday:
		return t.Hour() % 12
	case chronofmt.FieldClockhourOfHalfday:
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return h
	case chronofmt.FieldClockhourOfDay:
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return h
	case chronofmt.FieldHourOfDay:
		return t.Hour()
	case chronofmt.FieldMinuteOfDay:
		return t.Hour()*60 + t.Minute()
	case chronofmt.FieldMinuteOfHour:
		return t.Minute()
	case chronofmt.FieldSecondOfDay:
		return t.Hour()*3600 + t.Minute()*60 + t.Second()
	case chronofmt.FieldSecondOfMinute:
		return t.Second()
	case chronofmt.FieldMillisOfDay:
		return int(t.Hour())*chronofmt.MillisPerHour +
			t.Minute()*chronofmt.MillisPerMinute +
			t.Second()*chronofmt.MillisPerSecond +
			t.Nanosecond()/1e6
	case chronofmt.FieldMillisOfSecond:
		return t.Nanosecond() / 1e6
	}
	return 0
}

// eraYear is the year within the era: 1 BC is year 1 of the BC era.
func (f field) eraYear(t time.Time) int {
	y := t.Year()
	if y <= 0 {
		return 1 - y
	}
	return y
}

func (f field) Text(localMillis int64, short bool) string {
	t := time.UnixMilli(localMillis).UTC()
	switch f.typ {
	case chronofmt.FieldEra:
		if t.Year() <= 0 {
			return "BC"
		}
		return "AD"
	case chronofmt.FieldMonthOfYear:
		if short {
			return t.Month().String()[:3]
		}
		return t.Month().String()
	case chronofmt.FieldDayOfWeek:
		if short {
			return t.Weekday().String()[:3]
		}
		return t.Weekday().String()
	case chronofmt.FieldHalfdayOfDay:
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	}
	return strconv.Itoa(f.Get(localMillis))
}

func (f field) MaximumTextLength(short bool) int {
	switch f.typ {
	case chronofmt.FieldEra, chronofmt.FieldHalfdayOfDay:
		return 2
	case chronofmt.FieldMonthOfYear:
		if short {
			return 3
		}
		return len(time.September.String())
	case chronofmt.FieldDayOfWeek:
		if short {
			return 3
		}
		return len(time.Wednesday.String())
	case chronofmt.FieldYear, chronofmt.FieldYearOfEra, chronofmt.FieldWeekyear:
		return 9
	}
	return len(strconv.Itoa(f.maxValue()))
}

func (f field) maxValue() int {
	switch f.typ {
	case chronofmt.FieldMillisOfDay:
		return chronofmt.MillisPerDay - 1
	case chronofmt.FieldMillisOfSecond:
		return 999
	case chronofmt.FieldSecondOfDay:
		return 86399
	case chronofmt.FieldMinuteOfDay:
		return 1439
	case chronofmt.FieldDayOfYear:
		return 366
	case chronofmt.FieldCenturyOfEra:
		return 99
	default:
		return 99
	}
}
