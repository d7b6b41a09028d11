// SPDX-License-Identifier: MIT

// Package gcircle implements generalized circles (circles, and lines through
// the origin) as Hermitian coefficient forms, together with the predicates the
// Dirichlet domain algorithm prunes with.
//
// What
//
//   - A Circle holds coefficients (a, b, c, d) with a, d real and c = conj(b),
//     describing {z : a|z|² + b·z + c·z̄ + d = 0}.
//     a ≠ 0 is a circle with center −c/a and radius √(|b/a|² − d/a);
//     a = 0 (within tolerance) is a line through the origin, stored by its unit direction.
//   - Constructors: FromCenterRadius, NewLine, FromCoefficients, Bisector.
//   - Predicates: ContainsInOpenDisk, Dominance (triple inclusion), IsGeodesic, Equal.
//   - Transformations: TransformBy pulls the form back through a mobius.Map,
//     BoundaryTriple and TransformationTo relate circles through cross ratios.
//   - Samples yields points of the arc inside the unit disk for renderers.
//
// Limitations
//
//	ContainsInOpenDisk and Dominance are defined for circles only. On lines they
//	return ErrUnsupportedLine together with a neutral result, so callers can
//	decide to keep both operands instead of trusting a misleading boolean.
//
// Errors
//
//   - ErrDegenerateInput        zero form, empty circle, coincident bisector points, undefined triple.
//   - ErrInconsistentTransform  a transformed form has a' ≈ 0 while d' ≠ 0.
//   - ErrUnsupportedLine        a circle-only predicate was asked about a line.
//   - ErrNonFinite              NaN or ±Inf in input or result.
package gcircle
