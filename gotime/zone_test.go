package gotime

import (
	"testing"

	chronofmt "github.com/reoring/chronofmt"
)

func TestZone_FixedOffset(t *testing.T) {
	z := FixedZone("IST", 5*chronofmt.MillisPerHour+30*chronofmt.MillisPerMinute)
	if got := z.Offset(refLocal); got != 5*chronofmt.MillisPerHour+30*chronofmt.MillisPerMinute {
		t.Fatalf("offset: got %d", got)
	}
	if got := z.Name(refLocal, true); got != "IST" {
		t.Fatalf("short name: got %q", got)
	}
}

func TestZone_UTC(t *testing.T) {
	z := UTC()
	if got := z.Offset(refLocal); got != 0 {
		t.Fatalf("offset: got %d", got)
	}
	if got := z.Name(refLocal, true); got != "UTC" {
		t.Fatalf("short name: got %q", got)
	}
}

func TestZone_NilLocationIsUTC(t *testing.T) {
	z := NewZone(nil)
	if got := z.Offset(0); got != 0 {
		t.Fatalf("offset: got %d", got)
	}
}
