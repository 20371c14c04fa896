package chronofmt

// Parse results are plain ints: a non-negative value is the cursor position
// after a successful parse, a negative value is the bitwise complement of
// the position at which parsing failed. The encoding is load-bearing (the
// alternation parser ranks failures by position), but it is produced and
// inspected only through the helpers below.

// Failure encodes pos as a parse failure result.
func Failure(pos int) int { return ^pos }

// IsFailure reports whether r encodes a parse failure.
func IsFailure(r int) bool { return r < 0 }

// FailurePosition recovers the position at which a failed parse gave up.
// The result is unspecified when r is not a failure.
func FailurePosition(r int) int { return ^r }
