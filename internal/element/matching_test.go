package element

import (
	"testing"

	chronofmt "github.com/reoring/chronofmt"
)

// consumeParser succeeds by advancing n characters and recording value.
type consumeParser struct {
	n     int
	field chronofmt.Field
	value int
}

func (p consumeParser) EstimateParsedLength() int { return p.n }

func (p consumeParser) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	b.SaveField(p.field, p.value)
	return pos + p.n
}

// failParser fails at a fixed position without touching the bucket.
type failParser struct {
	at int
}

func (p failParser) EstimateParsedLength() int { return p.at }

func (p failParser) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	return chronofmt.Failure(p.at)
}

func TestMatching_FullConsumptionWins(t *testing.T) {
	hour := stubField{typ: chronofmt.FieldHourOfDay}
	m := NewMatching([]chronofmt.Parser{
		failParser{at: 2},
		consumeParser{n: 5, field: hour, value: 1},
		consumeParser{n: 8, field: hour, value: 2},
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 0)
	if r != 8 {
		t.Fatalf("position: got %d want 8", r)
	}
	if v, _ := b.Value(chronofmt.FieldHourOfDay); v != 2 {
		t.Fatalf("value: got %d want 2", v)
	}
}

func TestMatching_GreatestProgressWins(t *testing.T) {
	hour := stubField{typ: chronofmt.FieldHourOfDay}
	m := NewMatching([]chronofmt.Parser{
		consumeParser{n: 5, field: hour, value: 1},
		consumeParser{n: 3, field: hour, value: 2},
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 0)
	if r != 5 {
		t.Fatalf("position: got %d want 5", r)
	}
	// Only the winner's assignment survives; the shorter trial was rolled
	// back.
	if v, _ := b.Value(chronofmt.FieldHourOfDay); v != 1 {
		t.Fatalf("value: got %d want 1", v)
	}
	if len(b.Entries()) != 1 {
		t.Fatalf("entries: got %d want 1", len(b.Entries()))
	}
}

func TestMatching_TieKeepsEarlierCandidate(t *testing.T) {
	hour := stubField{typ: chronofmt.FieldHourOfDay}
	m := NewMatching([]chronofmt.Parser{
		consumeParser{n: 4, field: hour, value: 1},
		consumeParser{n: 4, field: hour, value: 2},
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 0)
	if r != 4 {
		t.Fatalf("position: got %d want 4", r)
	}
	if v, _ := b.Value(chronofmt.FieldHourOfDay); v != 1 {
		t.Fatalf("value: got %d want 1", v)
	}
}

func TestMatching_AllFailReportsFurthest(t *testing.T) {
	m := NewMatching([]chronofmt.Parser{
		failParser{at: 2},
		failParser{at: 4},
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 0)
	if !chronofmt.IsFailure(r) {
		t.Fatalf("expected failure, got %d", r)
	}
	if got := chronofmt.FailurePosition(r); got != 4 {
		t.Fatalf("failure position: got %d want 4", got)
	}
	if len(b.Entries()) != 0 {
		t.Fatalf("bucket mutated on failure: %d entries", len(b.Entries()))
	}
}

func TestMatching_EmptyCandidateWinsWhenNothingProgresses(t *testing.T) {
	m := NewMatching([]chronofmt.Parser{
		failParser{at: 2},
		chronofmt.EmptyParser(),
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 3)
	if r != 3 {
		t.Fatalf("position: got %d want 3", r)
	}
	if len(b.Entries()) != 0 {
		t.Fatalf("bucket mutated: %d entries", len(b.Entries()))
	}
}

func TestMatching_ProgressBeatsEmptyCandidate(t *testing.T) {
	hour := stubField{typ: chronofmt.FieldHourOfDay}
	m := NewMatching([]chronofmt.Parser{
		consumeParser{n: 5, field: hour, value: 7},
		chronofmt.EmptyParser(),
	})

	b := chronofmt.NewBucket()
	r := m.ParseInto(b, "abcdefgh", 0)
	if r != 5 {
		t.Fatalf("position: got %d want 5", r)
	}
	if v, _ := b.Value(chronofmt.FieldHourOfDay); v != 7 {
		t.Fatalf("value: got %d want 7", v)
	}
}

func TestMatching_EstimateIsLongestBranch(t *testing.T) {
	m := NewMatching([]chronofmt.Parser{
		consumeParser{n: 3},
		consumeParser{n: 9},
		chronofmt.EmptyParser(),
	})
	if got := m.EstimateParsedLength(); got != 9 {
		t.Fatalf("estimate: got %d want 9", got)
	}
}
