// SPDX-License-Identifier: MIT

// Package gcircle - hyperbolic perpendicular bisectors.

package gcircle

import (
	"fmt"
	"math/cmplx"
)

// Bisector returns the generalized circle of points hyperbolically
// equidistant from p and q in the Poincaré disk:
//
//	(1 − |q|²)·|z − p|² = (1 − |p|²)·|z − q|²
//
// which expands to a = |q|² − |p|², b = −(1 − |p|²)·conj(q) + (1 − |q|²)·conj(p),
// c = conj(b), d = a. Points of equal modulus yield a line through the origin.
// Returns ErrDegenerateInput when p == q.
func Bisector(p, q complex128) (Circle, error) {
	if p == q {
		return Circle{}, fmt.Errorf("Bisector(%v, %v): identical points: %w", p, q, ErrDegenerateInput)
	}
	pa, qa := cmplx.Abs(p), cmplx.Abs(q)
	pa2, qa2 := pa*pa, qa*qa

	a := qa2 - pa2
	b := -complex(1-pa2, 0)*cmplx.Conj(q) + complex(1-qa2, 0)*cmplx.Conj(p)

	out, err := FromCoefficients(a, b, cmplx.Conj(b), a)
	if err != nil {
		return Circle{}, fmt.Errorf("Bisector(%v, %v): %w", p, q, err)
	}

	return out, nil
}
