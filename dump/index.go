package dump

import "iter"

// Index is a string-keyed mapping that remembers the order in which keys were
// first inserted. Re-inserting a key replaces its value in place.
type Index[T any] struct {
	keys   []string
	values map[string]T
}

func newIndex[T any]() *Index[T] {
	return &Index[T]{values: make(map[string]T)}
}

func (x *Index[T]) set(key string, value T) {
	if _, ok := x.values[key]; !ok {
		x.keys = append(x.keys, key)
	}

	x.values[key] = value
}

// Get returns the value stored under key.
func (x *Index[T]) Get(key string) (T, bool) {
	if x == nil {
		var zero T

		return zero, false
	}

	v, ok := x.values[key]

	return v, ok
}

// Len returns the number of keys.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}

	return len(x.keys)
}

// Keys returns an iterator over the keys in insertion order.
func (x *Index[T]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if x == nil {
			return
		}

		for _, k := range x.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in insertion order.
func (x *Index[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if x == nil {
			return
		}

		for _, k := range x.keys {
			if !yield(k, x.values[k]) {
				return
			}
		}
	}
}
