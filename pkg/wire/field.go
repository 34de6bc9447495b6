package wire

import "encoding/json"

// Decoder converts one raw JSON value into a typed field value. It must
// fail on JSON null and on type-tag mismatches, and should return the
// field's reset value alongside a false result.
type Decoder[T any] func(raw json.RawMessage) (T, bool)

// Field carries a value together with the two per-field flags of the
// object contract. The zero Field is unset and invalid.
type Field[T any] struct {
	value T
	set   bool
	valid bool
}

// NewField wraps an initial value, typically the type-appropriate default
// used by a model constructor. The field starts unset.
func NewField[T any](v T) Field[T] {
	return Field[T]{value: v}
}

// Get returns the current value regardless of the flags.
func (f Field[T]) Get() T {
	return f.value
}

// Set assigns a value and marks the field set. Direct assignment is a
// trusted call site, so the valid flag is left alone; only extraction
// from JSON recomputes it.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.set = true
}

// IsSet reports whether the field was assigned, by setter or extraction.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsValid reports whether the most recent extraction succeeded.
func (f Field[T]) IsValid() bool {
	return f.valid
}

// Extract repopulates the field from obj[key]. Absent keys, JSON null,
// and malformed values all leave the field unset and invalid with the
// decoder's reset value; a clean conversion marks it set and valid. The
// previous state is always discarded.
func (f *Field[T]) Extract(obj JSONObject, key string, dec Decoder[T]) {
	raw := obj[key]
	v, ok := dec(raw)
	f.value = v
	f.valid = ok
	f.set = ok && !IsNull(raw)
}
