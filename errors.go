package chronofmt

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by
// convention). All of these describe configuration failures raised while
// building a layout; parse failures are positional ints, never Issues.
const (
	CodeBadPattern             = "bad_pattern"
	CodeInvalidDigits          = "invalid_digits"
	CodeNilComponent           = "nil_component"
	CodeIncompleteAlternatives = "incomplete_alternatives"
	CodeNotPrinter             = "not_printer"
	CodeNotParser              = "not_parser"
	// Codes used by outer layers (codec, resolver) when mapping positional
	// parse failures or unresolvable buckets into error values.
	CodeParseError       = "parse_error"
	CodeTruncated        = "truncated"
	CodeUnsupportedField = "unsupported_field"
)

// Issue represents a single configuration error entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	// Offset is the index into the pattern (or parsed text, for the outer
	// layers) the issue refers to, or -1 when unknown.
	Offset int
	// Params carries structured parameters (e.g., {"letter":"Q"}) for i18n
	// and observability.
	Params map[string]any
}

// Issues is a collection of configuration errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Offset >= 0 {
			fmt.Fprintf(b, "%s at %d", it.Code, it.Offset)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
