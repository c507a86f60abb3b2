// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package diamond

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/SoftbearStudios/heightmap/terrain"
)

// Rand is a source of uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

// RandFunc creates a Rand that is deterministic for a seed.
type RandFunc func(seed uint32) Rand

// NewMathRand is the default RandFunc.
func NewMathRand(seed uint32) Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// Options configures a Generator.
type Options[T terrain.Scalar] struct {
	// Factor is the detail factor, clamped to [terrain.MinFactor, terrain.MaxFactor].
	Factor uint
	// Offset divides the random terms. Higher values give more even terrain.
	// Must be non-zero.
	Offset T
	// Seed of the random source.
	Seed uint32
	// Perturbation defaults to PerturbFlat.
	Perturbation Perturbation
	// Rand defaults to NewMathRand.
	Rand RandFunc
}

// Generator generates a heightmap using the diamond-square algorithm.
// It is not safe for concurrent use.
type Generator[T terrain.Scalar] struct {
	heights      terrain.Heights[T]
	side         int
	factor       uint
	offset       T
	seed         uint32
	perturbation Perturbation
	newRand      RandFunc
	rand         Rand
	state        State
}

var _ terrain.Source[float64] = (*Generator[float64])(nil)

// New creates a Generator with an explicit seed.
func New[T terrain.Scalar](factor uint, offset T, seed uint32) (*Generator[T], error) {
	return NewWithOptions(Options[T]{Factor: factor, Offset: offset, Seed: seed})
}

// NewTimeSeeded creates a Generator seeded with the current time.
func NewTimeSeeded[T terrain.Scalar](factor uint, offset T) (*Generator[T], error) {
	return New(factor, offset, uint32(time.Now().Unix()))
}

// NewWithOptions creates a Generator. Its heightmap is zeroed until Build is called.
func NewWithOptions[T terrain.Scalar](options Options[T]) (*Generator[T], error) {
	if options.Offset == 0 || math.IsNaN(float64(options.Offset)) {
		return nil, fmt.Errorf("diamond: offset %v: %w", options.Offset, terrain.ErrZeroOffset)
	}

	newRand := options.Rand
	if newRand == nil {
		newRand = NewMathRand
	}

	factor := terrain.ClampFactor(options.Factor)
	side := terrain.SideFor(factor)

	return &Generator[T]{
		heights:      terrain.MakeHeights[T](side),
		side:         side,
		factor:       factor,
		offset:       options.Offset,
		seed:         options.Seed,
		perturbation: options.Perturbation,
		newRand:      newRand,
	}, nil
}

// Build implements terrain.Source.Build.
func (g *Generator[T]) Build() {
	g.heights = terrain.MakeHeights[T](g.side)
	g.seedCorners()

	g.state = Generating
	for step := g.side - 1; step > 1; step /= 2 {
		g.diamond(step)
		g.square(step)
	}

	g.rand = nil
	g.state = Complete
}

// seedCorners re-seeds the random source and sets the four corners.
// This also counts as the first square step.
func (g *Generator[T]) seedCorners() {
	g.rand = g.newRand(g.seed)
	g.state = Seeded

	last := g.side - 1
	g.set(0, 0, g.corner())
	g.set(last, 0, g.corner())
	g.set(0, last, g.corner())
	g.set(last, last, g.corner())
}

func (g *Generator[T]) corner() T {
	return T(g.rand.Float64()) / g.offset
}

// diamond sets the center of every step*step square to the average of its corners.
func (g *Generator[T]) diamond(step int) {
	half := step / 2

	for y := 0; y < g.side-1; y += step {
		for x := 0; x < g.side-1; x += step {
			sum := g.at(x, y) +
				g.at(x, y+step) +
				g.at(x+step, y) +
				g.at(x+step, y+step)

			g.set(x+half, y+half, (sum+g.perturb(step))/5)
		}
	}
}

// square sets the midpoint of every edge to the average of its neighbors half a
// step away. Neighbors past the edge of the grid wrap around.
func (g *Generator[T]) square(step int) {
	half := step / 2

	for y := 0; y < g.side; y += half {
		for x := (y + half) % step; x < g.side; x += step {
			sum := g.at(x, y-half) +
				g.at(x+half, y) +
				g.at(x, y+half) +
				g.at(x-half, y)

			g.set(x, y, (sum+g.perturb(step))/5)
		}
	}
}

// Side implements terrain.Source.Side.
func (g *Generator[T]) Side() int {
	return g.side
}

// Map implements terrain.Source.Map.
func (g *Generator[T]) Map() []T {
	return g.heights.Copy()
}

// Value implements terrain.Source.Value.
func (g *Generator[T]) Value(pos int) (T, error) {
	return g.heights.Value(pos)
}

// Factor is the clamped detail factor.
func (g *Generator[T]) Factor() uint {
	return g.factor
}

func (g *Generator[T]) Seed() uint32 {
	return g.seed
}

func (g *Generator[T]) Offset() T {
	return g.offset
}

func (g *Generator[T]) Perturbation() Perturbation {
	return g.perturbation
}

func (g *Generator[T]) State() State {
	return g.state
}
