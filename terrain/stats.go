// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Stats summarizes a heightmap.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Summarize computes Stats of values. Empty values give zero Stats.
func Summarize[T Scalar](values []T) (stats Stats) {
	if len(values) == 0 {
		return
	}

	stats.Min = float64(values[0])
	stats.Max = stats.Min

	var sum float64
	for _, v := range values {
		f := float64(v)
		if f < stats.Min {
			stats.Min = f
		}
		if f > stats.Max {
			stats.Max = f
		}
		sum += f
	}

	stats.Mean = sum / float64(len(values))
	return
}
