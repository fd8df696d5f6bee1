package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a change-set slot. It records whether a field was present in a
// request body at all, separately from the value it carried: an absent key
// leaves the slot unset, while an explicit JSON null sets the slot with T's
// zero value (nil when T is a pointer type). This is what lets a PATCH body
// distinguish "leave the field alone" from "clear the field".
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a set slot holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// IsSet reports whether the field was present in the request.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Get returns the held value and whether the slot is set.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

var nullLiteral = []byte("null")

// UnmarshalJSON marks the slot set. encoding/json never calls this for keys
// missing from the body, which is exactly the unset case.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(data, nullLiteral) {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON renders unset slots as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return nullLiteral, nil
	}
	return json.Marshal(v.value)
}

// Apply assigns the slot's value to dst when the slot is set and leaves dst
// untouched otherwise. Every entity merge in this codebase is this one
// assignment repeated per field.
func Apply[T any](dst *T, v Value[T]) {
	if v.set {
		*dst = v.value
	}
}
