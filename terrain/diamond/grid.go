// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package diamond

// Index maps x and y onto a row-major position in a side*side grid, wrapping
// both axes so the grid behaves like a torus. x and y may be off the grid by
// up to one side in either direction.
func Index(x, y, side int) int {
	return ((y+side)%side)*side + (x+side)%side
}

// at reads a grid value, wrapping around the edges.
func (g *Generator[T]) at(x, y int) T {
	return g.heights[Index(x, y, g.side)]
}

// set writes a grid value, wrapping around the edges.
func (g *Generator[T]) set(x, y int, value T) {
	g.heights[Index(x, y, g.side)] = value
}
