// Package nullable provides Value, a field wrapper that distinguishes a field
// that was never set from one explicitly set to null and from one holding a
// value.
//
// Partial-update request bodies need all three states: an omitted field leaves
// the server-side value unchanged, a null clears it, and a value replaces it.
// A plain pointer can only express two of them.
//
// # JSON
//
// Value implements json.Marshaler and json.Unmarshaler. Combined with the
// omitzero struct tag option, unset values are omitted entirely:
//
//	type UpdateCustomerRequest struct {
//	    Note nullable.Value[string] `json:"note,omitzero"`
//	}
//
//	req := UpdateCustomerRequest{}            // {}
//	req.Note = nullable.Null[string]()        // {"note":null}
//	req.Note = nullable.Of("gold tier")       // {"note":"gold tier"}
//
// Decoding restores the same three states: a missing key leaves the field
// unset, a JSON null yields Null, and anything else yields a value.
package nullable

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State is the presence state of a Value.
type State uint8

const (
	// StateUnset means the field was never set and is omitted when encoded.
	StateUnset State = iota
	// StateNull means the field was explicitly set to null.
	StateNull
	// StateValue means the field holds a value.
	StateValue
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateNull:
		return "null"
	case StateValue:
		return "value"
	default:
		return "unknown"
	}
}

// Value holds an optional, nullable T. The zero Value is unset.
type Value[T any] struct {
	state State
	value T
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{state: StateValue, value: v}
}

// Null returns a Value explicitly set to null.
func Null[T any]() Value[T] {
	return Value[T]{state: StateNull}
}

// Unset returns an unset Value. It is equivalent to the zero Value.
func Unset[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Null for a nil pointer and Of(*p) otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// State returns the presence state of v.
func (v Value[T]) State() State {
	return v.state
}

// IsPresent reports whether v was set, either to null or to a value.
func (v Value[T]) IsPresent() bool {
	return v.state != StateUnset
}

// IsNull reports whether v was explicitly set to null.
func (v Value[T]) IsNull() bool {
	return v.state == StateNull
}

// HasValue reports whether v holds a value.
func (v Value[T]) HasValue() bool {
	return v.state == StateValue
}

// IsZero reports whether v is unset. encoding/json consults it for fields
// tagged omitzero.
func (v Value[T]) IsZero() bool {
	return v.state == StateUnset
}

// Get returns the held value and true, or the zero T and false when v is
// unset or null.
func (v Value[T]) Get() (T, bool) {
	if v.state != StateValue {
		var zero T
		return zero, false
	}
	return v.value, true
}

// OrZero returns the held value, or the zero T when v is unset or null.
func (v Value[T]) OrZero() T {
	val, _ := v.Get()
	return val
}

// Or returns the held value, or def when v is unset or null.
func (v Value[T]) Or(def T) T {
	if val, ok := v.Get(); ok {
		return val
	}
	return def
}

// Ptr returns a pointer to a copy of the held value, or nil when v is unset
// or null.
func (v Value[T]) Ptr() *T {
	if v.state != StateValue {
		return nil
	}
	val := v.value
	return &val
}

// Clone returns a copy of v whose held value, if any, is passed through fn.
// Generated DeepCopy methods use it to copy reference-typed values.
func (v Value[T]) Clone(fn func(T) T) Value[T] {
	if v.state != StateValue || fn == nil {
		return v
	}
	return Value[T]{state: StateValue, value: fn(v.value)}
}

// String formats v for debugging.
func (v Value[T]) String() string {
	switch v.state {
	case StateValue:
		return fmt.Sprintf("%v", v.value)
	default:
		return "<" + v.state.String() + ">"
	}
}

var nullLiteral = []byte("null")

// MarshalJSON encodes null for unset and null values and the held value
// otherwise. Unset values only reach MarshalJSON when the enclosing field is
// not tagged omitzero.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.state != StateValue {
		return nullLiteral, nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes JSON null as Null and anything else as a value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*v = Null[T]()
		return nil
	}
	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*v = Of(val)
	return nil
}

// Compile-time interface checks.
var (
	_ json.Marshaler   = Value[int]{}
	_ json.Unmarshaler = (*Value[int])(nil)
)
