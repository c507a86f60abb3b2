// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package diamond

import "fmt"

// Perturbation selects how the random term of each averaged cell is computed.
type Perturbation uint8

const (
	// PerturbFlat uses u / offset at every step.
	PerturbFlat Perturbation = iota
	// PerturbLiteral uses 2u, ignoring offset and step. Matches reference
	// output of the C++ generator whose step scale cancels itself out.
	PerturbLiteral
	// PerturbDecay uses (u / offset) * step / (side - 1), so randomness
	// shrinks as detail is added.
	PerturbDecay
)

var perturbationNames = [...]string{
	PerturbFlat:    "flat",
	PerturbLiteral: "literal",
	PerturbDecay:   "decay",
}

func (p Perturbation) String() string {
	if int(p) < len(perturbationNames) {
		return perturbationNames[p]
	}
	return "unknown"
}

// ParsePerturbation is the inverse of Perturbation.String.
func ParsePerturbation(s string) (Perturbation, error) {
	for i, name := range perturbationNames {
		if name == s {
			return Perturbation(i), nil
		}
	}
	return 0, fmt.Errorf("diamond: unknown perturbation %q", s)
}

// perturb draws one random term for a cell written at the given step.
func (g *Generator[T]) perturb(step int) T {
	u := T(g.rand.Float64())

	switch g.perturbation {
	case PerturbLiteral:
		return u * 2
	case PerturbDecay:
		return u / g.offset * T(step) / T(g.side-1)
	default:
		return u / g.offset
	}
}
