package element

import (
	"testing"

	chronofmt "github.com/reoring/chronofmt"
)

func TestCharLiteral(t *testing.T) {
	e := NewCharLiteral('T')

	if got := printed(e, 0); got != "T" {
		t.Fatalf("print: got %q", got)
	}
	b := chronofmt.NewBucket()
	if r := e.ParseInto(b, "t12", 0); r != 1 {
		t.Fatalf("case-insensitive parse: got %d want 1", r)
	}
	if r := e.ParseInto(b, "x", 0); !chronofmt.IsFailure(r) {
		t.Fatalf("mismatch accepted: %d", r)
	}
	if r := e.ParseInto(b, "T", 1); !chronofmt.IsFailure(r) {
		t.Fatalf("past end accepted: %d", r)
	}
}

func TestCharLiteral_MultibyteRune(t *testing.T) {
	e := NewCharLiteral('é')
	if got := e.EstimatePrintedLength(); got != 2 {
		t.Fatalf("estimate: got %d want 2", got)
	}
	b := chronofmt.NewBucket()
	if r := e.ParseInto(b, "École", 0); r != 2 {
		t.Fatalf("parse: got %d want 2", r)
	}
}

func TestStringLiteral(t *testing.T) {
	e := NewStringLiteral("GMT")

	if got := printed(e, 0); got != "GMT" {
		t.Fatalf("print: got %q", got)
	}
	b := chronofmt.NewBucket()
	if r := e.ParseInto(b, "xxgmt+1", 2); r != 5 {
		t.Fatalf("case-insensitive parse: got %d want 5", r)
	}
	if r := e.ParseInto(b, "GM", 0); !chronofmt.IsFailure(r) {
		t.Fatalf("truncated text accepted: %d", r)
	}
	if got := chronofmt.FailurePosition(e.ParseInto(b, "UTC", 0)); got != 0 {
		t.Fatalf("failure position: got %d want 0", got)
	}
}
