// SPDX-License-Identifier: MIT

// Package mobius - sentinel errors and numeric defaults.

package mobius

import "errors"

// DefaultEpsilon is the relative tolerance used for determinant and projective
// equality checks when no explicit tolerance is given.
const DefaultEpsilon = 1e-12

var (
	// ErrSingular is returned when a matrix has a (numerically) zero determinant.
	ErrSingular = errors.New("mobius: singular matrix")

	// ErrNonFinite is returned when an entry, an input or a result is NaN or ±Inf.
	ErrNonFinite = errors.New("mobius: NaN or Inf encountered")

	// ErrPole is returned by Apply when the point is the pole of the map,
	// i.e. it is sent to the point at infinity.
	ErrPole = errors.New("mobius: point is mapped to infinity")

	// ErrDegenerateTriple is returned when a boundary triple contains coincident
	// points and no cross-ratio map exists.
	ErrDegenerateTriple = errors.New("mobius: boundary triple has coincident points")
)
