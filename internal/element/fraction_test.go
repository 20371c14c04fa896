package element

import (
	"testing"

	chronofmt "github.com/reoring/chronofmt"
)

func TestFraction_PrintOfMinute(t *testing.T) {
	// 45 seconds into a minute is three-quarters: ".75" sans point.
	e := NewFraction(2, 2, chronofmt.MillisPerMinute)
	if got := printed(e, 45000); got != "75" {
		t.Fatalf("print: got %q want %q", got, "75")
	}
}

func TestFraction_ZeroPrintsMinDigits(t *testing.T) {
	e := NewFraction(3, 6, chronofmt.MillisPerSecond)
	if got := printed(e, 5000); got != "000" {
		t.Fatalf("zero remainder: got %q want %q", got, "000")
	}

	none := NewFraction(0, 3, chronofmt.MillisPerSecond)
	if got := printed(none, 2000); got != "" {
		t.Fatalf("zero remainder with minDigits 0: got %q want empty", got)
	}
}

func TestFraction_TrimsOnlyTrailingZeros(t *testing.T) {
	e := NewFraction(3, 9, chronofmt.MillisPerSecond)

	// 978 ms of a second scales to 978000000; trailing zeros are trimmed
	// down to (but not below) minDigits, never rounded.
	if got := printed(e, 978); got != "978" {
		t.Fatalf("print 978: got %q want %q", got, "978")
	}
	// 900 ms keeps the minimum three digits.
	if got := printed(e, 900); got != "900" {
		t.Fatalf("print 900: got %q want %q", got, "900")
	}
	// 5 ms needs its leading zeros.
	if got := printed(e, 5); got != "005" {
		t.Fatalf("print 5: got %q want %q", got, "005")
	}
}

func TestFraction_NegativeInstantRemainder(t *testing.T) {
	// Floor-style modulo keeps the remainder non-negative for negative
	// instants: -250 ms is 750 ms into its second.
	e := NewFraction(3, 3, chronofmt.MillisPerSecond)
	if got := printed(e, -250); got != "750" {
		t.Fatalf("print -250: got %q want %q", got, "750")
	}
}

func TestFraction_ScaleClampAgainstOverflow(t *testing.T) {
	// A day-sized range times 10^18 overflows int64, so the digit count
	// must be clamped until range*scale fits.
	e := NewFraction(0, 18, chronofmt.MillisPerDay)
	if e.MaxDigits() >= 18 {
		t.Fatalf("digit count not clamped: %d", e.MaxDigits())
	}
	limit := int64(chronofmt.MillisPerDay) * pow10(e.MaxDigits())
	if limit/pow10(e.MaxDigits()) != int64(chronofmt.MillisPerDay) {
		t.Fatalf("clamped scale still overflows")
	}
}

func TestFraction_ParseRoundTrip(t *testing.T) {
	e := NewFraction(2, 2, chronofmt.MillisPerMinute)

	b := chronofmt.NewBucket()
	r := e.ParseInto(b, "75", 0)
	if r != 2 {
		t.Fatalf("parse position: got %d want 2", r)
	}
	if v, ok := b.Value(chronofmt.FieldFraction); !ok || v != 45000 {
		t.Fatalf("parsed fraction: got %d ok=%v want 45000", v, ok)
	}
}

func TestFraction_ParseTruncatesExtraDigits(t *testing.T) {
	e := NewFraction(1, 3, chronofmt.MillisPerSecond)

	b := chronofmt.NewBucket()
	r := e.ParseInto(b, "97855", 0)
	if r != 3 {
		t.Fatalf("parse position: got %d want 3", r)
	}
	if v, _ := b.Value(chronofmt.FieldFraction); v != 978 {
		t.Fatalf("parsed fraction: got %d want 978", v)
	}
}

func TestFraction_ParseEmptyFails(t *testing.T) {
	e := NewFraction(1, 3, chronofmt.MillisPerSecond)
	b := chronofmt.NewBucket()
	if r := e.ParseInto(b, "xyz", 0); !chronofmt.IsFailure(r) {
		t.Fatalf("expected failure, got %d", r)
	}
}
