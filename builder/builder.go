// Package builder constructs chronofmt printers, parsers and formatters by
// appending layout elements or compiling pattern strings.
package builder

import (
	chronofmt "github.com/reoring/chronofmt"
	"github.com/reoring/chronofmt/i18n"
	"github.com/reoring/chronofmt/internal/element"
)

// Builder owns one ordered element sequence from construction until
// cleared. It is mutable, single-writer, and freezes its sequence into an
// immutable artifact at Build time; later appends never affect an artifact
// already handed out.
type Builder struct {
	chrono chronofmt.Chronology
	slots  []element.Slot
	frozen *frozenArtifact
	issues chronofmt.Issues
}

// frozenArtifact caches the composite derived from the current sequence.
// Any half left nil means the sequence does not support that role.
type frozenArtifact struct {
	printer   chronofmt.Printer
	parser    chronofmt.Parser
	formatter chronofmt.Formatter
}

// New returns a builder resolving fields through the chronology.
func New(chrono chronofmt.Chronology) *Builder {
	b := &Builder{chrono: chrono}
	if chrono == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
	}
	return b
}

// Chronology returns the chronology the builder resolves fields through.
func (b *Builder) Chronology() chronofmt.Chronology { return b.chrono }

// Err returns the configuration issues recorded so far, or nil.
func (b *Builder) Err() error {
	if len(b.issues) == 0 {
		return nil
	}
	return b.issues
}

// Clear discards all appended elements and recorded issues, returning the
// builder to its initial empty state for reuse.
func (b *Builder) Clear() {
	b.slots = nil
	b.frozen = nil
	b.issues = nil
}

func (b *Builder) issue(code string, offset int, params map[string]any) {
	data := map[string]string{}
	for k, v := range params {
		if s, ok := v.(string); ok {
			data[k] = s
		}
	}
	b.issues = chronofmt.AppendIssues(b.issues, chronofmt.Issue{
		Code:    code,
		Message: i18n.T(code, data),
		Offset:  offset,
		Params:  params,
	})
}

// appendSlot records one (printer, parser) slot and invalidates the cached
// artifact.
func (b *Builder) appendSlot(p chronofmt.Printer, q chronofmt.Parser) *Builder {
	b.frozen = nil
	b.slots = append(b.slots, element.Slot{Printer: p, Parser: q})
	return b
}

// appendBoth installs one element into both halves of a new slot.
func (b *Builder) appendBoth(f chronofmt.Formatter) *Builder {
	b.frozen = nil
	b.slots = append(b.slots, element.Slot{Printer: f, Parser: f, Same: true})
	return b
}

// Append appends a formatter as both printer and parser.
func (b *Builder) Append(f chronofmt.Formatter) *Builder {
	if f == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendBoth(f)
}

// AppendPrinter appends just a printer. With no matching parser, a parser
// cannot be built from this builder.
func (b *Builder) AppendPrinter(p chronofmt.Printer) *Builder {
	if p == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendSlot(p, nil)
}

// AppendParser appends just a parser. With no matching printer, a printer
// cannot be built from this builder.
func (b *Builder) AppendParser(p chronofmt.Parser) *Builder {
	if p == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendSlot(nil, p)
}

// AppendPrinterParser appends a printer/parser pair into one slot.
func (b *Builder) AppendPrinterParser(p chronofmt.Printer, q chronofmt.Parser) *Builder {
	if p == nil || q == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendSlot(p, q)
}

// AppendParsers appends a printer (which may be nil) and a set of matching
// parsers. When parsing, the candidate making the greatest progress wins.
// Only the last candidate may be chronofmt.EmptyParser(), which makes the
// whole alternation optional; a nil candidate anywhere is an error except
// that a nil last candidate is accepted as shorthand for the empty parser.
func (b *Builder) AppendParsers(printer chronofmt.Printer, parsers ...chronofmt.Parser) *Builder {
	if len(parsers) == 0 {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	if len(parsers) == 1 {
		if parsers[0] == nil {
			b.issue(chronofmt.CodeNilComponent, -1, nil)
			return b
		}
		return b.appendSlot(printer, parsers[0])
	}

	cp := make([]chronofmt.Parser, len(parsers))
	for i, p := range parsers {
		if p == nil {
			if i == len(parsers)-1 {
				p = chronofmt.EmptyParser()
			} else {
				b.issue(chronofmt.CodeIncompleteAlternatives, -1, nil)
				return b
			}
		} else if chronofmt.IsEmptyParser(p) && i != len(parsers)-1 {
			b.issue(chronofmt.CodeIncompleteAlternatives, -1, nil)
			return b
		}
		cp[i] = p
	}
	return b.appendSlot(printer, element.NewMatching(cp))
}

// AppendOptional appends a parser that may match or consume nothing.
func (b *Builder) AppendOptional(parser chronofmt.Parser) *Builder {
	if parser == nil {
		b.issue(chronofmt.CodeNilComponent, -1, nil)
		return b
	}
	return b.appendSlot(nil, element.NewMatching([]chronofmt.Parser{parser, chronofmt.EmptyParser()}))
}

// freeze derives (and caches) the artifact for the current sequence. A
// single slot whose halves are one and the same element is handed out
// directly; everything else is fused into a composite over a snapshot of
// the slots.
func (b *Builder) freeze() frozenArtifact {
	if b.frozen != nil {
		return *b.frozen
	}

	var fa frozenArtifact
	if len(b.slots) == 0 {
		// An empty sequence supports neither role.
		b.frozen = &fa
		return fa
	}
	if len(b.slots) == 1 {
		s := b.slots[0]
		switch {
		case s.Parser == nil:
			fa.printer = s.Printer
		case s.Printer == nil:
			fa.parser = s.Parser
		case s.Same:
			fa.printer = s.Printer
			fa.parser = s.Parser
			if f, ok := s.Printer.(chronofmt.Formatter); ok {
				fa.formatter = f
			}
		}
	}
	if fa.printer == nil && fa.parser == nil {
		comp := element.NewComposite(append([]element.Slot(nil), b.slots...))
		if comp.IsPrinter() {
			fa.printer = comp
		}
		if comp.IsParser() {
			fa.parser = comp
		}
		if comp.IsPrinter() && comp.IsParser() {
			fa.formatter = comp
		}
	}

	b.frozen = &fa
	return fa
}

// CanBuildPrinter reports whether BuildPrinter would succeed.
func (b *Builder) CanBuildPrinter() bool {
	return len(b.issues) == 0 && b.freeze().printer != nil
}

// CanBuildParser reports whether BuildParser would succeed.
func (b *Builder) CanBuildParser() bool {
	return len(b.issues) == 0 && b.freeze().parser != nil
}

// CanBuildFormatter reports whether Build would succeed.
func (b *Builder) CanBuildFormatter() bool {
	fa := b.freeze()
	return len(b.issues) == 0 && fa.formatter != nil
}

// BuildPrinter freezes the sequence into a printer. Subsequent changes to
// the builder do not affect the returned printer.
func (b *Builder) BuildPrinter() (chronofmt.Printer, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	fa := b.freeze()
	if fa.printer == nil {
		return nil, chronofmt.Issues{{Code: chronofmt.CodeNotPrinter, Message: i18n.T(chronofmt.CodeNotPrinter, nil), Offset: -1}}
	}
	return fa.printer, nil
}

// BuildParser freezes the sequence into a parser. Subsequent changes to the
// builder do not affect the returned parser.
func (b *Builder) BuildParser() (chronofmt.Parser, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	fa := b.freeze()
	if fa.parser == nil {
		return nil, chronofmt.Issues{{Code: chronofmt.CodeNotParser, Message: i18n.T(chronofmt.CodeNotParser, nil), Offset: -1}}
	}
	return fa.parser, nil
}

// Build freezes the sequence into a formatter supporting both printing and
// parsing. Subsequent changes to the builder do not affect the returned
// formatter.
func (b *Builder) Build() (chronofmt.Formatter, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	fa := b.freeze()
	if fa.formatter != nil {
		return fa.formatter, nil
	}
	if fa.printer == nil {
		return nil, chronofmt.Issues{{Code: chronofmt.CodeNotPrinter, Message: i18n.T(chronofmt.CodeNotPrinter, nil), Offset: -1}}
	}
	return nil, chronofmt.Issues{{Code: chronofmt.CodeNotParser, Message: i18n.T(chronofmt.CodeNotParser, nil), Offset: -1}}
}

// MustBuild is Build for layouts known statically to be valid.
func (b *Builder) MustBuild() chronofmt.Formatter {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
