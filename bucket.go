package chronofmt

// FieldEntry is one value assigned into a Bucket during parsing. Numeric and
// textual assignments are distinct forms; textual values are resolved by the
// calendar engine after parsing completes.
type FieldEntry struct {
	Field  Field
	Value  int
	Text   string
	IsText bool
}

// Bucket accumulates field values while parsing. It is owned by the caller
// of the top-level parse, holds mutable state, and must not be shared
// between concurrent parse operations.
type Bucket struct {
	entries   []FieldEntry
	offset    int
	offsetSet bool
}

// BucketState is a value-semantics snapshot of a Bucket; restoring it
// exactly undoes all assignments made since it was taken.
type BucketState struct {
	entries   []FieldEntry
	offset    int
	offsetSet bool
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket { return &Bucket{} }

// SaveField assigns a numeric value to a field.
func (b *Bucket) SaveField(f Field, value int) {
	b.entries = append(b.entries, FieldEntry{Field: f, Value: value})
}

// SaveText assigns an unresolved textual value to a field.
func (b *Bucket) SaveText(f Field, text string) {
	b.entries = append(b.entries, FieldEntry{Field: f, Text: text, IsText: true})
}

// SetOffset records a raw zone offset override in milliseconds.
func (b *Bucket) SetOffset(millis int) {
	b.offset = millis
	b.offsetSet = true
}

// Offset reports the recorded zone offset override, if any.
func (b *Bucket) Offset() (int, bool) { return b.offset, b.offsetSet }

// Entries returns the assignments in assignment order. The returned slice
// must not be mutated.
func (b *Bucket) Entries() []FieldEntry { return b.entries }

// Value reports the last numeric value assigned for the field type.
func (b *Bucket) Value(ft FieldType) (int, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if e := b.entries[i]; !e.IsText && e.Field.Type() == ft {
			return e.Value, true
		}
	}
	return 0, false
}

// TextValue reports the last textual value assigned for the field type.
func (b *Bucket) TextValue(ft FieldType) (string, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if e := b.entries[i]; e.IsText && e.Field.Type() == ft {
			return e.Text, true
		}
	}
	return "", false
}

// Reset discards all assignments and the offset override.
func (b *Bucket) Reset() {
	b.entries = b.entries[:0]
	b.offset = 0
	b.offsetSet = false
}

// SaveState snapshots the bucket.
func (b *Bucket) SaveState() BucketState {
	return BucketState{
		entries:   append([]FieldEntry(nil), b.entries...),
		offset:    b.offset,
		offsetSet: b.offsetSet,
	}
}

// RestoreState rewinds the bucket to a previously saved snapshot.
func (b *Bucket) RestoreState(s BucketState) {
	b.entries = append(b.entries[:0], s.entries...)
	b.offset = s.offset
	b.offsetSet = s.offsetSet
}
