// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideFor(t *testing.T) {
	tests := []struct {
		factor uint
		side   int
	}{
		{0, 5},
		{1, 5},
		{2, 5},
		{3, 9},
		{8, 257},
		{12, 4097},
		{13, 4097},
		{1000, 4097},
	}

	for _, test := range tests {
		assert.Equal(t, test.side, SideFor(test.factor), "SideFor(%d)", test.factor)
	}

	for factor := uint(MinFactor); factor <= MaxFactor; factor++ {
		side := SideFor(factor)
		assert.Equal(t, 1, side%2, "side %d should be odd", side)
		assert.Equal(t, side, SideFor(ClampFactor(factor)))
		assert.Len(t, MakeHeights[float32](side), side*side)
	}
}

func TestClampFactor(t *testing.T) {
	assert.Equal(t, uint(MinFactor), ClampFactor(0))
	assert.Equal(t, uint(7), ClampFactor(7))
	assert.Equal(t, uint(MaxFactor), ClampFactor(MaxFactor+1))
	assert.Equal(t, ClampFactor(99), ClampFactor(ClampFactor(99)))
}

func TestHeights_Value(t *testing.T) {
	h := MakeHeights[float64](5)
	h[24] = 3

	v, err := h.Value(24)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = h.Value(25)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = h.Value(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHeights_Copy(t *testing.T) {
	h := MakeHeights[float32](5)
	c := h.Copy()
	c[0] = 1

	assert.Equal(t, float32(0), h[0])
	assert.Len(t, c, 25)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize[float64](nil))

	stats := Summarize([]float32{1, -2, 4, 1})
	assert.Equal(t, Stats{Min: -2, Max: 4, Mean: 1}, stats)
}
