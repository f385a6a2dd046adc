// Package optional holds a value that may be absent.
//
// Equality is part of the contract, not an accident of the representation:
//
//   - two absent values are equal,
//   - an absent value never equals a present one,
//   - two present values are equal when their payloads are equal with ==.
//
// The zero Value is absent, so a struct field of type Value[T] reads as "not given" until set.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Value[T comparable] struct {
	value   T
	present bool
}

// Of returns a present Value holding v.
func Of[T comparable](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T comparable]() Value[T] {
	return Value[T]{}
}

// FromPointer turns a nil pointer into an absent Value, and any other pointer into a present one.
func FromPointer[T comparable](ptr *T) Value[T] {
	if ptr == nil {
		return None[T]()
	}
	return Of(*ptr)
}

func (v Value[T]) IsPresent() bool { return v.present }

func (v Value[T]) IsAbsent() bool { return !v.present }

// Get returns the held value and reports whether it was present.
// When absent, the zero value of T is returned.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// OrElse returns the held value, or def when absent.
func (v Value[T]) OrElse(def T) T {
	if !v.present {
		return def
	}
	return v.value
}

// Pointer returns nil when absent.
func (v Value[T]) Pointer() *T {
	if !v.present {
		return nil
	}
	val := v.value
	return &val
}

func (v Value[T]) Equal(oth Value[T]) bool {
	if v.present != oth.present {
		return false
	}
	if !v.present {
		return true
	}
	return v.value == oth.value
}

// Equal is the function form of Value.Equal, handy as a field equality func.
func Equal[T comparable](a, b Value[T]) bool {
	return a.Equal(b)
}

func (v Value[T]) String() string {
	if !v.present {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v.value)
}

var jsonNull = []byte("null")

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present {
		return jsonNull, nil
	}
	return json.Marshal(v.value)
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = None[T]()
		return nil
	}
	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*v = Of(val)
	return nil
}

func (v Value[T]) MarshalYAML() (any, error) {
	if !v.present {
		return nil, nil
	}
	return v.value, nil
}

func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*v = None[T]()
		return nil
	}
	var val T
	if err := node.Decode(&val); err != nil {
		return err
	}
	*v = Of(val)
	return nil
}
