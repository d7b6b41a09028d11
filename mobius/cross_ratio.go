// SPDX-License-Identifier: MIT

// Package mobius - cross-ratio construction from three boundary points.

package mobius

import (
	"fmt"
	"math/cmplx"
)

// FromBoundaryTriple returns the cross-ratio map of zs, sending
// zs[0] → 0, zs[1] → 1 and zs[2] → ∞:
//
//	f = (z1 − z2) / (z1 − z0)
//	M = [[f, −f·z0], [1, −z2]]
//
// Two such maps compose into the unique Möbius transformation between two
// triples: FromBoundaryTriple(w).Adjugate() ∘ FromBoundaryTriple(z) sends
// z[i] to w[i]. Returns ErrDegenerateTriple if any two points coincide and
// ErrNonFinite for non-finite points.
func FromBoundaryTriple(zs [3]complex128) (Map, error) {
	// Stage 1: validate
	for i, z := range zs {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return Map{}, fmt.Errorf("FromBoundaryTriple: point %d: %w", i, ErrNonFinite)
		}
	}
	if zs[0] == zs[1] || zs[1] == zs[2] || zs[0] == zs[2] {
		return Map{}, fmt.Errorf("FromBoundaryTriple: %v: %w", zs, ErrDegenerateTriple)
	}

	// Stage 2: build the matrix
	f := (zs[1] - zs[2]) / (zs[1] - zs[0])
	m := Map{A: f, B: -f * zs[0], C: 1, D: -zs[2]}

	// det = f·(z0 − z2) vanishes only for coincident points, which is checked
	// above, but it can still underflow for nearly coincident ones
	if m.singular() {
		return Map{}, fmt.Errorf("FromBoundaryTriple: %v: %w", zs, ErrDegenerateTriple)
	}

	return m, nil
}
