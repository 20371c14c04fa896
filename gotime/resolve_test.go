package gotime

import (
	"errors"
	"testing"
	"time"

	chronofmt "github.com/reoring/chronofmt"
)

func TestResolve_OverlaysDateAndTime(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldYear), 1987)
	b.SaveField(iso.Field(chronofmt.FieldMonthOfYear), 6)
	b.SaveField(iso.Field(chronofmt.FieldDayOfMonth), 5)
	b.SaveField(iso.Field(chronofmt.FieldHourOfDay), 13)
	b.SaveField(iso.Field(chronofmt.FieldMinuteOfHour), 14)
	b.SaveField(iso.Field(chronofmt.FieldSecondOfMinute), 15)
	b.SaveField(iso.Field(chronofmt.FieldMillisOfSecond), 250)

	got, err := iso.Resolve(b, time.Time{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := time.Date(1987, time.June, 5, 13, 14, 15, 250e6, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestResolve_LastAssignmentWins(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldHourOfDay), 3)
	b.SaveField(iso.Field(chronofmt.FieldHourOfDay), 21)

	got, err := iso.Resolve(b, time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 21 {
		t.Fatalf("hour: got %d", got.Hour())
	}
}

func TestResolve_HalfdayClock(t *testing.T) {
	iso := ISO()
	base := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldClockhourOfHalfday), 1)
	b.SaveText(iso.Field(chronofmt.FieldHalfdayOfDay), "PM")
	got, err := iso.Resolve(b, base)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 13 {
		t.Fatalf("PM hour: got %d", got.Hour())
	}

	b.Reset()
	b.SaveField(iso.Field(chronofmt.FieldClockhourOfHalfday), 12)
	b.SaveText(iso.Field(chronofmt.FieldHalfdayOfDay), "am")
	got, err = iso.Resolve(b, base)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 0 {
		t.Fatalf("12 AM hour: got %d", got.Hour())
	}
}

func TestResolve_TextualMonthAndEra(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldYear), 44)
	b.SaveText(iso.Field(chronofmt.FieldMonthOfYear), "march")
	b.SaveText(iso.Field(chronofmt.FieldEra), "BC")

	got, err := iso.Resolve(b, time.Time{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// 44 BC is proleptic year -43.
	if got.Year() != -43 || got.Month() != time.March {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_YearOfCenturyPivotsOnBase(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldYearOfCentury), 87)

	got, err := iso.Resolve(b, time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Year() != 1987 {
		t.Fatalf("year: got %d", got.Year())
	}
}

func TestResolve_DayOfYear(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldYear), 1987)
	b.SaveField(iso.Field(chronofmt.FieldDayOfYear), 156)

	got, err := iso.Resolve(b, time.Time{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Month() != time.June || got.Day() != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_OffsetShiftsToUTC(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveField(iso.Field(chronofmt.FieldYear), 2026)
	b.SaveField(iso.Field(chronofmt.FieldMonthOfYear), 8)
	b.SaveField(iso.Field(chronofmt.FieldDayOfMonth), 29)
	b.SaveField(iso.Field(chronofmt.FieldHourOfDay), 14)
	b.SetOffset(5*chronofmt.MillisPerHour + 30*chronofmt.MillisPerMinute)

	got, err := iso.Resolve(b, time.Time{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := time.Date(2026, time.August, 29, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestResolve_UnknownTextIsAnIssue(t *testing.T) {
	iso := ISO()
	b := chronofmt.NewBucket()
	b.SaveText(iso.Field(chronofmt.FieldMonthOfYear), "Brumaire")

	_, err := iso.Resolve(b, time.Time{})
	if err == nil {
		t.Fatalf("expected error")
	}
	var issues chronofmt.Issues
	if !errors.As(err, &issues) || issues[0].Code != chronofmt.CodeUnsupportedField {
		t.Fatalf("error: %v", err)
	}
}
