package chronofmt

// emptyParser succeeds immediately, consuming nothing. It is the explicit
// "empty alternative" of an alternation; an absent parser half of a builder
// slot is a different case entirely and never reaches parse time.
type emptyParser struct{}

func (emptyParser) EstimateParsedLength() int { return 0 }
func (emptyParser) ParseInto(b *Bucket, text string, pos int) int { return pos }

// EmptyParser returns the parser that always succeeds without consuming
// input. It is only meaningful as the last candidate of an alternation.
func EmptyParser() Parser { return emptyParser{} }

// IsEmptyParser reports whether p is the empty parser.
func IsEmptyParser(p Parser) bool {
	_, ok := p.(emptyParser)
	return ok
}
