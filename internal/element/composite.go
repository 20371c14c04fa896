package element

import (
	"strings"

	chronofmt "github.com/reoring/chronofmt"
)

// Composite fuses a frozen slot sequence into one printer and/or one
// parser. A capability survives only if every slot carries that half; the
// length estimates are the sums over the retained halves.
type Composite struct {
	printers []chronofmt.Printer // nil when any slot lacked a printer half
	parsers  []chronofmt.Parser  // nil when any slot lacked a parser half

	printedLengthEstimate int
	parsedLengthEstimate  int
}

// NewComposite projects the slots into parallel printer and parser arrays.
// The slice is owned by the composite; callers pass a snapshot.
func NewComposite(slots []Slot) *Composite {
	isPrinter := true
	isParser := true
	printEst := 0
	parseEst := 0

	printers := make([]chronofmt.Printer, 0, len(slots))
	parsers := make([]chronofmt.Parser, 0, len(slots))
	for _, s := range slots {
		if s.Printer == nil {
			isPrinter = false
		} else {
			printEst += s.Printer.EstimatePrintedLength()
			printers = append(printers, s.Printer)
		}
		if s.Parser == nil {
			isParser = false
		} else {
			parseEst += s.Parser.EstimateParsedLength()
			parsers = append(parsers, s.Parser)
		}
	}

	if !isPrinter {
		printers = nil
	}
	if !isParser {
		parsers = nil
	}

	return &Composite{
		printers:              printers,
		parsers:               parsers,
		printedLengthEstimate: printEst,
		parsedLengthEstimate:  parseEst,
	}
}

// IsPrinter reports whether every slot contributed a printer half.
func (c *Composite) IsPrinter() bool { return c.printers != nil }

// IsParser reports whether every slot contributed a parser half.
func (c *Composite) IsParser() bool { return c.parsers != nil }

func (c *Composite) EstimatePrintedLength() int { return c.printedLengthEstimate }

func (c *Composite) PrintTo(sb *strings.Builder, utcMillis int64, zone chronofmt.Zone, localMillis int64) {
	if c.printers == nil {
		panic("chronofmt: layout does not support printing")
	}
	for _, p := range c.printers {
		p.PrintTo(sb, utcMillis, zone, localMillis)
	}
}

func (c *Composite) EstimateParsedLength() int { return c.parsedLengthEstimate }

func (c *Composite) ParseInto(b *chronofmt.Bucket, text string, pos int) int {
	if c.parsers == nil {
		panic("chronofmt: layout does not support parsing")
	}
	for _, p := range c.parsers {
		pos = p.ParseInto(b, text, pos)
		if pos < 0 {
			break
		}
	}
	return pos
}
