// Package patch holds the tri-state field used by partial updates: a JSON
// key can be absent, explicitly null, or carry a value.
package patch

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a key was present in the request body and, if so,
// whether it was null. The zero value means "absent".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value returns an Optional carrying v.
func Value[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// HasValue reports a present, non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what distinguishes absent from null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
