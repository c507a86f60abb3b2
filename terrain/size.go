// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

const (
	// MinFactor is the smallest detail factor, a 5x5 heightmap.
	MinFactor = 2
	// MaxFactor is the largest detail factor, a 4097x4097 heightmap.
	MaxFactor = 12
)

// ClampFactor silently moves factor into [MinFactor, MaxFactor].
func ClampFactor(factor uint) uint {
	if factor < MinFactor {
		return MinFactor
	}
	if factor > MaxFactor {
		return MaxFactor
	}
	return factor
}

// SideFor returns the side length 2^factor + 1 of a heightmap with the given detail factor.
// Out of range factors are clamped.
func SideFor(factor uint) int {
	return 1<<ClampFactor(factor) + 1
}
