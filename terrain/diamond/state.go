// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package diamond

// State is the phase of a Generator.
type State uint8

const (
	// Uninitialized generators have a zeroed heightmap. Only new generators are
	// in this state; Build goes straight to Seeded.
	Uninitialized State = iota
	// Seeded generators have a fresh random source and their four corners set.
	Seeded
	// Generating is only observed from within Build.
	Generating
	// Complete generators have every cell populated.
	Complete
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Seeded:        "seeded",
	Generating:    "generating",
	Complete:      "complete",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
