// Package clone holds the structural copy helpers used by generated DeepCopy
// methods. Every helper preserves the difference between a nil and an empty
// collection so that omitempty encoding behaves the same on the copy.
package clone

import (
	"encoding/json"

	"github.com/mohae/deepcopy"
)

// Values returns a copy of a slice whose elements are copied by assignment.
func Values[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Slice returns a copy of in with every element passed through fn.
func Slice[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// SliceWith adapts Slice to the func(T) T shape expected by nullable.Value.Clone.
func SliceWith[T any](fn func(T) T) func([]T) []T {
	return func(in []T) []T {
		return Slice(in, fn)
	}
}

// ValueMap returns a copy of a map whose values are copied by assignment.
func ValueMap[V any](in map[string]V) map[string]V {
	if in == nil {
		return nil
	}
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Map returns a copy of in with every value passed through fn.
func Map[V any](in map[string]V, fn func(V) V) map[string]V {
	if in == nil {
		return nil
	}
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = fn(v)
	}
	return out
}

// MapWith adapts Map to the func(T) T shape expected by nullable.Value.Clone.
func MapWith[V any](fn func(V) V) func(map[string]V) map[string]V {
	return func(in map[string]V) map[string]V {
		return Map(in, fn)
	}
}

// JSON recursively copies a free-form value. The shapes produced by
// encoding/json and flat string collections take a fast path. Any other
// value (typed slices and maps, pointers, structs) is copied by reflection;
// like encoding/json, that copy only sees exported struct fields.
func JSON(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, float64, float32, int, int64, int32, int16, int8,
		uint, uint64, uint32, uint16, uint8, json.Number:
		return t
	case []any:
		return Slice(t, JSON)
	case map[string]any:
		return Map(t, JSON)
	case []string:
		return Values(t)
	case map[string]string:
		return ValueMap(t)
	case json.RawMessage:
		return json.RawMessage(Values([]byte(t)))
	default:
		return deepcopy.Copy(v)
	}
}
