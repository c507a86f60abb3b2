// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/SoftbearStudios/heightmap/terrain"
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

const (
	// Sample coordinates span [0, extent) on both axes regardless of side.
	extent        = 8.0
	zoneFrequency = 0.15
)

// Generator generates a heightmap using perlin noise.
// Heights are in [0, 1].
type Generator[T terrain.Scalar] struct {
	heights terrain.Heights[T]
	side    int
	seed    int64

	hi *perlin.Perlin // for smaller/higher frequency details
	lo *perlin.Perlin // for larger/lower frequency details
}

var _ terrain.Source[float32] = (*Generator[float32])(nil)

// New creates a new Generator with a detail factor and a seed.
// Like diamond.New, out of range factors are clamped.
func New[T terrain.Scalar](factor uint, seed int64) *Generator[T] {
	side := terrain.SideFor(factor)
	return &Generator[T]{
		heights: terrain.MakeHeights[T](side),
		side:    side,
		seed:    seed,
	}
}

// Build implements terrain.Source.Build.
func (g *Generator[T]) Build() {
	g.hi = perlin.NewPerlin(1.5, 2.0, 4, g.seed)
	g.lo = perlin.NewPerlin(2.5, 3.0, 4, g.seed+1)

	scale := extent / float64(g.side)

	for j := 0; j < g.side; j++ {
		for i := 0; i < g.side; i++ {
			x := float64(i) * scale
			y := float64(j) * scale

			h := float32(g.hi.Noise2D(x, y))*0.5 + 0.5

			// Zone is very low frequency
			zone := math32.Min(float32(g.lo.Noise2D(x*zoneFrequency, y*zoneFrequency))*2.0+0.6, 1)
			h *= zone

			g.heights[i+j*g.side] = T(clamp(h))
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

func (g *Generator[T]) Seed() int64 {
	return g.seed
}
