// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// Scalar is the element type of a heightmap.
type Scalar interface {
	~float32 | ~float64
}

// Source generates a square heightmap.
// A Source is owned by one goroutine; use one Source per goroutine.
type Source[T Scalar] interface {
	// Build (re)generates the whole heightmap. Calling it twice yields the same map.
	Build()
	// Side is the width and height of the heightmap.
	Side() int
	// Map returns a row-major copy of the heightmap.
	Map() []T
	// Value returns a single value by its row-major position.
	Value(pos int) (T, error)
}

// Heights is a flat, row-major, side*side heightmap buffer.
type Heights[T Scalar] []T

// MakeHeights allocates a zeroed side*side buffer.
func MakeHeights[T Scalar](side int) Heights[T] {
	return make(Heights[T], side*side)
}

// Copy returns a copy that does not alias h.
func (h Heights[T]) Copy() []T {
	c := make([]T, len(h))
	copy(c, h)
	return c
}

// Value is the bounds checked accessor shared by all sources.
func (h Heights[T]) Value(pos int) (T, error) {
	if pos < 0 || pos >= len(h) {
		var zero T
		return zero, fmt.Errorf("position %d of %d: %w", pos, len(h), ErrIndexOutOfRange)
	}
	return h[pos], nil
}
