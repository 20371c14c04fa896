package codec

import (
	"context"
	"errors"
	"testing"
	"time"

	chronofmt "github.com/reoring/chronofmt"
	"github.com/reoring/chronofmt/gotime"
)

func TestTimeCodec_RoundTripUTC(t *testing.T) {
	ctx := context.Background()
	c, err := Pattern("yyyy-MM-dd HH:mm:ss.SSS", nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	want := time.Date(1987, time.June, 5, 13, 14, 15, 250e6, time.UTC)
	s, err := c.Encode(ctx, want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s != "1987-06-05 13:14:15.250" {
		t.Fatalf("encoded: got %q", s)
	}

	got, err := c.Decode(ctx, s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip: got %v want %v", got, want)
	}
}

func TestTimeCodec_ZoneWallClock(t *testing.T) {
	ctx := context.Background()
	ist := gotime.FixedZone("IST", 5*chronofmt.MillisPerHour+30*chronofmt.MillisPerMinute)
	c, err := Pattern("yyyy-MM-dd HH:mm", ist)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	instant := time.Date(2026, time.August, 29, 9, 5, 0, 0, time.UTC)
	s, err := c.Encode(ctx, instant)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s != "2026-08-29 14:35" {
		t.Fatalf("encoded: got %q", s)
	}

	got, err := c.Decode(ctx, s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(instant) {
		t.Fatalf("round trip: got %v want %v", got, instant)
	}
}

func TestTimeCodec_ParsedOffsetWins(t *testing.T) {
	ctx := context.Background()
	c, err := Pattern("yyyy-MM-dd HH:mmZZ", nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	got, err := c.Decode(ctx, "2026-08-29 14:35+05:30")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := time.Date(2026, time.August, 29, 9, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTimeCodec_DecodeFailurePosition(t *testing.T) {
	ctx := context.Background()
	c, err := Pattern("yyyy-MM-dd", nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	_, err = c.Decode(ctx, "1987/06/05")
	var issues chronofmt.Issues
	if !errors.As(err, &issues) || issues[0].Code != chronofmt.CodeParseError {
		t.Fatalf("error: %v", err)
	}
	if issues[0].Offset != 4 {
		t.Fatalf("offset: got %d want 4", issues[0].Offset)
	}
}

func TestTimeCodec_DecodeRejectsTrailingInput(t *testing.T) {
	ctx := context.Background()
	c, err := Pattern("HH:mm", nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	_, err = c.Decode(ctx, "13:14:15")
	var issues chronofmt.Issues
	if !errors.As(err, &issues) || issues[0].Code != chronofmt.CodeTruncated {
		t.Fatalf("error: %v", err)
	}
	if issues[0].Offset != 5 {
		t.Fatalf("offset: got %d want 5", issues[0].Offset)
	}
}

func TestTimeCodec_WithBase(t *testing.T) {
	ctx := context.Background()
	c, err := Pattern("HH:mm", nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	c = c.WithBase(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC))

	got, err := c.Decode(ctx, "13:14")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := time.Date(2026, time.August, 29, 13, 14, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTimeCodec_BadPatternSurfacesAtCompile(t *testing.T) {
	_, err := Pattern("yyyy-QQ", nil)
	var issues chronofmt.Issues
	if !errors.As(err, &issues) || issues[0].Code != chronofmt.CodeBadPattern {
		t.Fatalf("error: %v", err)
	}
}
