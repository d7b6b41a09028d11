// SPDX-License-Identifier: MIT

// Package gcircle - the Circle value type, constructors and accessors.

package gcircle

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs/cscalar"
	"gonum.org/v1/gonum/floats/scalar"
)

// Circle is an immutable generalized circle.
//
// Invariants:
//   - c == conj(b), so only b is stored;
//   - kind == KindLine iff a vanishes relative to the coefficient scale;
//   - a circle has a finite center and radius > 0;
//   - a line passes through the origin and direction has modulus 1.
type Circle struct {
	a, d      float64
	b         complex128
	kind      Kind
	center    complex128
	radius    float64
	direction complex128
}

// FromCenterRadius returns the circle |z − center| = radius.
// Returns ErrDegenerateInput unless radius > 0, ErrNonFinite for NaN/Inf input.
func FromCenterRadius(center complex128, radius float64) (Circle, error) {
	if cmplx.IsNaN(center) || cmplx.IsInf(center) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, fmt.Errorf("FromCenterRadius: %w", ErrNonFinite)
	}
	if radius <= 0 {
		return Circle{}, fmt.Errorf("FromCenterRadius: radius %g: %w", radius, ErrDegenerateInput)
	}
	abs := cmplx.Abs(center)

	return Circle{
		a:      1,
		b:      -cmplx.Conj(center),
		d:      abs*abs - radius*radius,
		kind:   KindCircle,
		center: center,
		radius: radius,
	}, nil
}

// NewLine returns the line through the origin spanned by direction.
// Returns ErrDegenerateInput for a zero direction.
func NewLine(direction complex128) (Circle, error) {
	if cmplx.IsNaN(direction) || cmplx.IsInf(direction) {
		return Circle{}, fmt.Errorf("NewLine: %w", ErrNonFinite)
	}
	abs := cmplx.Abs(direction)
	if abs == 0 {
		return Circle{}, fmt.Errorf("NewLine: zero direction: %w", ErrDegenerateInput)
	}
	v := direction / complex(abs, 0)

	// Im(conj(v)·z) = 0 ⇔ i·conj(v)·z + conj(i·conj(v)·z) = 0
	return Circle{
		b:         1i * cmplx.Conj(v),
		kind:      KindLine,
		direction: v,
	}, nil
}

// FromCoefficients returns the generalized circle a|z|² + b·z + c·z̄ + d = 0.
//
// Blueprint:
//
//	Stage 1 (Validate): finite input, non-zero form, c ≈ conj(b).
//	Stage 2 (Classify): a ≈ 0 ⇒ line, which must pass through the origin (d ≈ 0).
//	Stage 3 (Derive):   center −c/a and radius √(|b/a|² − d/a) > 0.
//
// Tolerances are relative to the largest coefficient magnitude, see WithEpsilon.
func FromCoefficients(a float64, b, c complex128, d float64, opts ...Option) (Circle, error) {
	o := gatherOptions(opts)

	// Stage 1: validate
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(d) || math.IsInf(d, 0) ||
		cmplx.IsNaN(b) || cmplx.IsInf(b) || cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return Circle{}, fmt.Errorf("FromCoefficients: %w", ErrNonFinite)
	}
	scale := coefficientScale(a, b, d)
	if scale == 0 {
		return Circle{}, fmt.Errorf("FromCoefficients: zero form: %w", ErrDegenerateInput)
	}
	tol := o.eps * scale
	if !cscalar.EqualWithinAbs(c, cmplx.Conj(b), tol) {
		return Circle{}, fmt.Errorf("FromCoefficients: c=%v is not conj(b)=%v: %w", c, cmplx.Conj(b), ErrDegenerateInput)
	}

	// Stage 2: classify
	if scalar.EqualWithinAbs(a, 0, tol) {
		if !scalar.EqualWithinAbs(d, 0, tol) {
			return Circle{}, fmt.Errorf("FromCoefficients: line off the origin (d=%g): %w", d, ErrUnsupportedLine)
		}
		// for a line i·conj(v) == b/|b|, hence v == i·conj(b)/|b|
		v := 1i * cmplx.Conj(b) / complex(cmplx.Abs(b), 0)
		return Circle{a: a, b: b, d: d, kind: KindLine, direction: v}, nil
	}

	// Stage 3: derive
	r2 := real(b*cmplx.Conj(b))/(a*a) - d/a
	if !(r2 > 0) {
		return Circle{}, fmt.Errorf("FromCoefficients: squared radius %g: %w", r2, ErrDegenerateInput)
	}

	return Circle{
		a:      a,
		b:      b,
		d:      d,
		kind:   KindCircle,
		center: -cmplx.Conj(b) / complex(a, 0),
		radius: math.Sqrt(r2),
	}, nil
}

// Coefficients returns (a, b, c, d) with c == conj(b).
func (g Circle) Coefficients() (a float64, b, c complex128, d float64) {
	return g.a, g.b, cmplx.Conj(g.b), g.d
}

// Kind reports whether g is a circle or a line.
func (g Circle) Kind() Kind { return g.kind }

// IsLine reports whether g is a line through the origin.
func (g Circle) IsLine() bool { return g.kind == KindLine }

// IsCircle reports whether g is a proper circle.
func (g Circle) IsCircle() bool { return g.kind == KindCircle }

// Center returns the center of a circle and 0 for a line.
func (g Circle) Center() complex128 { return g.center }

// Radius returns the radius of a circle and 0 for a line.
func (g Circle) Radius() float64 { return g.radius }

// Direction returns the unit direction of a line and 0 for a circle.
func (g Circle) Direction() complex128 { return g.direction }

// String renders g for debugging.
func (g Circle) String() string {
	if g.IsLine() {
		return fmt.Sprintf("line(dir=%.6g)", g.direction)
	}
	return fmt.Sprintf("circle(center=%.6g, r=%.6g)", g.center, g.radius)
}

// coefficientScale is the largest coefficient magnitude of the form.
func coefficientScale(a float64, b complex128, d float64) float64 {
	return math.Max(math.Max(math.Abs(a), cmplx.Abs(b)), math.Abs(d))
}
