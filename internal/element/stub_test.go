package element

import (
	"strconv"

	chronofmt "github.com/reoring/chronofmt"
)

// stubField treats the local millisecond value itself as the field value,
// which keeps print tests free of calendar arithmetic.
type stubField struct {
	typ chronofmt.FieldType
}

func (f stubField) Type() chronofmt.FieldType { return f.typ }
func (f stubField) Name() string              { return "stub" }
func (f stubField) Get(local int64) int       { return int(local) }

func (f stubField) Text(local int64, short bool) string {
	names := []string{"zero", "one", "two", "three", "four"}
	v := f.Get(local)
	if v >= 0 && v < len(names) {
		if short {
			return names[v][:2]
		}
		return names[v]
	}
	return strconv.Itoa(v)
}

func (f stubField) MaximumTextLength(short bool) int {
	if short {
		return 2
	}
	return 5
}
