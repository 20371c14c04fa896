package element

import (
	chronofmt "github.com/reoring/chronofmt"
)

// MatchingParser tries each candidate parser at one shared position and
// commits to the single best alternative: full consumption wins outright,
// otherwise the greatest successful progress, otherwise the failure that got
// furthest. Ties keep the earlier candidate. The empty parser may only be
// the last candidate and wins only when nothing made real progress.
type MatchingParser struct {
	parsers              []chronofmt.Parser
	parsedLengthEstimate int
}

// NewMatching returns an alternation over the candidates. The caller has
// validated that only the last candidate may be the empty parser.
func NewMatching(parsers []chronofmt.Parser) *MatchingParser {
	// Worst case is the longest branch.
	est := 0
	for _, p := range parsers {
		if l := p.EstimateParsedLength(); l > est {
			est = l
		}
	}
	return &MatchingParser{parsers: parsers, parsedLengthEstimate: est}
}

func (m *MatchingParser) EstimateParsedLength() int { return m.parsedLengthEstimate }

func (m *MatchingParser) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	state := b.SaveState()

	bestInvalidPos, bestInvalidParser := pos, 0
	bestValidPos, bestValidParser := pos, 0

	for i, p := range m.parsers {
		if i != 0 {
			b.RestoreState(state)
		}

		if chronofmt.IsEmptyParser(p) {
			// The empty parser wins only if nothing is better.
			if bestValidPos > pos {
				break
			}
			return pos
		}

		r := p.ParseInto(b, text, pos)
		if r >= pos {
			if r >= len(text) {
				return r
			}
			if r > bestValidPos {
				bestValidPos = r
				bestValidParser = i
			}
		} else {
			if fp := chronofmt.FailurePosition(r); fp > bestInvalidPos {
				bestInvalidPos = fp
				bestInvalidParser = i
			}
		}
	}

	// Trying candidate k+1 mutated the bucket even when candidate k was the
	// best, so replay the winner unless it was already the last one run.
	if bestValidPos > pos {
		if bestValidParser == len(m.parsers)-1 {
			return bestValidPos
		}
		b.RestoreState(state)
		return m.parsers[bestValidParser].ParseInto(b, text, pos)
	}

	if bestInvalidParser == len(m.parsers)-1 {
		return chronofmt.Failure(bestInvalidPos)
	}
	b.RestoreState(state)
	return m.parsers[bestInvalidParser].ParseInto(b, text, pos)
}
