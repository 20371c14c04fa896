// Package chronofmt compiles date-time text layouts into reusable printer
// and parser artifacts:
//
// - A layout is described either by explicit append calls on a builder or by
//   a compact pattern string ("yyyy-MM-dd HH:mm:ss").
// - Building freezes the layout into an immutable Printer, Parser, or
//   Formatter (both); frozen artifacts are safe for concurrent use.
// - Parsing writes field values into a caller-supplied Bucket and reports
//   failure as a complemented position, never as an error value.
// - Calendar computation, locale text, and zone lookup stay outside the
//   package behind the Field/Chronology/Zone interfaces.
//
// Design policy:
// - Keep only public APIs in the root package; put the primitive elements
//   under internal/.
// - Place the builder under builder/, codecs under codec/, the stdlib time
//   adapter under gotime/, and the CLI under cmd/chronofmt.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	f, err := builder.New(gotime.ISO()).AppendPattern("yyyy-MM-dd").Build()
//	s := chronofmt.Print(f, utcMillis, zone, localMillis)
//
//	b := chronofmt.NewBucket()
//	pos := f.ParseInto(b, "2026-08-29", 0)

package chronofmt
