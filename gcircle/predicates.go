// SPDX-License-Identifier: MIT

// Package gcircle - containment, triple inclusion, geodesic and equality tests.

package gcircle

import (
	"math"
	"math/cmplx"
)

// ContainsInOpenDisk reports whether p lies strictly inside the disk bounded
// by g. Lines bound no disk: the result is false with ErrUnsupportedLine.
func (g Circle) ContainsInOpenDisk(p complex128) (bool, error) {
	if g.IsLine() {
		return false, ErrUnsupportedLine
	}
	return cmplx.Abs(p-g.center) < g.radius, nil
}

// Dominance runs the triple-inclusion test of g against other relative to
// the reference point center.
//
// Nested disks only (dist + rmin < rmax) can dominate each other:
//   - center inside both disks: the smaller circle dominates;
//   - center inside neither:    the larger circle dominates;
//   - center inside exactly one: DominanceNone.
//
// If either operand is a line the result is DominanceNone with ErrUnsupportedLine.
// The test is antisymmetric: Dominance(z, A, B) == SelfDominates iff
// Dominance(z, B, A) == OtherDominates.
func (g Circle) Dominance(center complex128, other Circle) (Dominance, error) {
	if g.IsLine() || other.IsLine() {
		return DominanceNone, ErrUnsupportedLine
	}

	dist := cmplx.Abs(g.center - other.center)
	rMax := math.Max(g.radius, other.radius)
	rMin := math.Min(g.radius, other.radius)
	if dist+rMin >= rMax {
		return DominanceNone, nil
	}

	inSelf := cmplx.Abs(center-g.center) < g.radius
	inOther := cmplx.Abs(center-other.center) < other.radius
	switch {
	case inSelf && inOther:
		if g.radius < other.radius {
			return SelfDominates, nil
		}
		return OtherDominates, nil
	case !inSelf && !inOther:
		if g.radius > other.radius {
			return SelfDominates, nil
		}
		return OtherDominates, nil
	default:
		return DominanceNone, nil
	}
}

// IsGeodesic reports whether g is orthogonal to the unit circle, i.e. a
// geodesic of the Poincaré disk: (|c|² − 1 − r²)² < eps² for a circle and
// |d| < eps for a line.
func (g Circle) IsGeodesic(eps float64) bool {
	if g.IsLine() {
		return math.Abs(g.d) < eps
	}
	abs := cmplx.Abs(g.center)
	delta := abs*abs - 1 - g.radius*g.radius

	return delta*delta < eps*eps
}

// Equal reports whether g and other are the same coefficient form up to a
// non-zero real scalar, within the relative tolerance tol.
func (g Circle) Equal(other Circle, tol float64) bool {
	if g.kind != other.kind {
		return false
	}
	u := [4]float64{g.a, real(g.b), imag(g.b), g.d}
	v := [4]float64{other.a, real(other.b), imag(other.b), other.d}
	nu, nv := norm(u), norm(v)
	if nu == 0 || nv == 0 {
		return nu == nv
	}
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			if math.Abs(u[i]*v[j]-u[j]*v[i]) > tol*nu*nv {
				return false
			}
		}
	}

	return true
}

func norm(v [4]float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
