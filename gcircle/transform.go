// SPDX-License-Identifier: MIT

// Package gcircle - images under Möbius maps and cross-ratio matching.

package gcircle

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/dirichlet/mobius"
)

// TransformBy returns the image of g under m.
//
// The form is pulled back through h = m.Adjugate(): a point w lies on the
// image iff h·w lies on g, which expands to
//
//	a' = a|h00|² + 2·Re(b·h00·conj(h10)) + d|h10|²
//	b' = a·h00·conj(h01) + b·h00·conj(h11) + c·conj(h01)·h10 + d·h10·conj(h11)
//	d' = a|h01|² + 2·Re(b·h01·conj(h11)) + d|h11|²
//
// Returns ErrInconsistentTransform when a' ≈ 0 but d' is not, ErrNonFinite when
// the expansion overflows, or any FromCoefficients error.
func (g Circle) TransformBy(m mobius.Map, opts ...Option) (Circle, error) {
	o := gatherOptions(opts)

	h := m.Adjugate()
	a, b, c, d := complex(g.a, 0), g.b, cmplx.Conj(g.b), complex(g.d, 0)

	at := real(a*sqAbs(h.A) + 2*complex(real(b*h.A*cmplx.Conj(h.C)), 0) + d*sqAbs(h.C))
	bt := a*h.A*cmplx.Conj(h.B) + b*h.A*cmplx.Conj(h.D) + c*cmplx.Conj(h.B)*h.C + d*h.C*cmplx.Conj(h.D)
	dt := real(a*sqAbs(h.B) + 2*complex(real(b*h.B*cmplx.Conj(h.D)), 0) + d*sqAbs(h.D))

	if math.IsNaN(at) || math.IsInf(at, 0) || math.IsNaN(dt) || math.IsInf(dt, 0) ||
		cmplx.IsNaN(bt) || cmplx.IsInf(bt) {
		return Circle{}, fmt.Errorf("TransformBy: %w", ErrNonFinite)
	}
	tol := o.eps * coefficientScale(at, bt, dt)
	if scalar.EqualWithinAbs(at, 0, tol) && !scalar.EqualWithinAbs(dt, 0, tol) {
		return Circle{}, fmt.Errorf("TransformBy: a'=%g, d'=%g: %w", at, dt, ErrInconsistentTransform)
	}

	out, err := FromCoefficients(at, bt, cmplx.Conj(bt), dt, opts...)
	if err != nil {
		return Circle{}, fmt.Errorf("TransformBy: %w", err)
	}

	return out, nil
}

// BoundaryTriple returns three distinct points of g in a fixed order.
//
// For a circle with α = acos(r/|c|) and γ = arg(c) + π (the direction towards
// the origin) the points are c + r·e^{i(γ+α)}, c + r·e^{iγ}, c + r·e^{i(γ−α)};
// for a geodesic the outer two are its endpoints on the unit circle.
// For a line with direction v the points are v, 0, −v.
//
// Returns ErrDegenerateInput for a circle with r ≥ |c|, where α is undefined.
func (g Circle) BoundaryTriple() ([3]complex128, error) {
	if g.IsLine() {
		return [3]complex128{g.direction, 0, -g.direction}, nil
	}
	abs := cmplx.Abs(g.center)
	if abs == 0 || g.radius >= abs {
		return [3]complex128{}, fmt.Errorf("BoundaryTriple: r=%g, |c|=%g: %w", g.radius, abs, ErrDegenerateInput)
	}
	alpha := math.Acos(g.radius / abs)
	gamma := cmplx.Phase(g.center) + math.Pi
	r := complex(g.radius, 0)

	return [3]complex128{
		g.center + r*cmplx.Exp(complex(0, gamma+alpha)),
		g.center + r*cmplx.Exp(complex(0, gamma)),
		g.center + r*cmplx.Exp(complex(0, gamma-alpha)),
	}, nil
}

// TransformationTo returns the Möbius map sending g onto other.
//
// g's boundary triple is matched with other's triple in reverse order, so the
// side of g facing the origin maps to the side of other facing away from it:
//
//	M = crossRatio(reverse(other)).Adjugate() ∘ crossRatio(g)
//
// For a pair of disjoint geodesics this is the Schottky generator pairing them.
func (g Circle) TransformationTo(other Circle) (mobius.Map, error) {
	from, err := g.BoundaryTriple()
	if err != nil {
		return mobius.Map{}, fmt.Errorf("TransformationTo: source: %w", err)
	}
	to, err := other.BoundaryTriple()
	if err != nil {
		return mobius.Map{}, fmt.Errorf("TransformationTo: target: %w", err)
	}
	to[0], to[2] = to[2], to[0]

	m1, err := mobius.FromBoundaryTriple(from)
	if err != nil {
		return mobius.Map{}, fmt.Errorf("TransformationTo: %w", err)
	}
	m2, err := mobius.FromBoundaryTriple(to)
	if err != nil {
		return mobius.Map{}, fmt.Errorf("TransformationTo: %w", err)
	}

	return m2.Adjugate().Compose(m1), nil
}

func sqAbs(z complex128) complex128 {
	return complex(real(z)*real(z)+imag(z)*imag(z), 0)
}
