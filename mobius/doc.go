// SPDX-License-Identifier: MIT

// Package mobius implements Möbius transformations of the extended complex
// plane as 2×2 invertible complex matrices.
//
// What
//
//   - Map{A, B, C, D} acts on a point z by
//     z ↦ (A·z + B) / (C·z + D).
//   - Maps are projective: λ·M and M describe the same transformation for any
//     non-zero λ. Equal compares maps up to that scalar.
//   - Compose multiplies matrices (apply the argument first), Inverse returns the
//     normalized matrix inverse, Adjugate returns the projective inverse
//     [[D, −B], [−C, A]] used to pull back circle coefficients.
//   - FromBoundaryTriple builds the cross-ratio map sending z0 → 0, z1 → 1, z2 → ∞.
//
// Numeric policy
//
//	Every operation that could produce NaN or ±Inf reports it instead:
//	ErrNonFinite for non-finite inputs, ErrPole when a point is sent to ∞,
//	ErrSingular for a vanishing determinant and ErrDegenerateTriple when the
//	cross ratio is undefined.
//
// Usage
//
//	g, err := mobius.New(1, 0.5, 0.5, 1)
//	if err != nil {
//		// ErrSingular or ErrNonFinite
//	}
//	w, err := g.Apply(0.25i)
//	back, _ := g.Inverse()
//	z, _ := back.Apply(w) // z ≈ 0.25i
//
// Complexity: every operation is O(1).
package mobius
