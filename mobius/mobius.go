// SPDX-License-Identifier: MIT

// Package mobius - the Map value type and its group operations.

package mobius

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Map is the Möbius transformation z ↦ (A·z + B) / (C·z + D).
//
// A Map is a plain value; every method returns a new Map and never mutates
// its receiver. The zero Map is singular and must not be used; build maps with
// New, Identity or FromBoundaryTriple.
type Map struct {
	A, B, C, D complex128
}

// Identity returns the identity transformation [[1, 0], [0, 1]].
func Identity() Map {
	return Map{A: 1, B: 0, C: 0, D: 1}
}

// New returns the map with matrix [[a, b], [c, d]].
// Returns ErrNonFinite if an entry is NaN or ±Inf and ErrSingular if the
// determinant vanishes relative to the entry magnitudes.
func New(a, b, c, d complex128) (Map, error) {
	m := Map{A: a, B: b, C: c, D: d}
	if !m.finite() {
		return Map{}, fmt.Errorf("New: %w", ErrNonFinite)
	}
	if m.singular() {
		return Map{}, fmt.Errorf("New: det=%v: %w", m.Det(), ErrSingular)
	}

	return m, nil
}

// Det returns the determinant A·D − B·C.
func (m Map) Det() complex128 {
	return m.A*m.D - m.B*m.C
}

// Apply evaluates the transformation at z.
// Returns ErrNonFinite for a non-finite z and ErrPole when C·z + D == 0.
func (m Map) Apply(z complex128) (complex128, error) {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, fmt.Errorf("Apply(%v): %w", z, ErrNonFinite)
	}
	den := m.C*z + m.D
	if den == 0 {
		return 0, fmt.Errorf("Apply(%v): %w", z, ErrPole)
	}
	w := (m.A*z + m.B) / den
	if cmplx.IsNaN(w) || cmplx.IsInf(w) {
		return 0, fmt.Errorf("Apply(%v): %w", z, ErrNonFinite)
	}

	return w, nil
}

// ApplyAll maps every point of zs and returns the images in the same order.
// It stops at the first point that cannot be mapped.
func (m Map) ApplyAll(zs []complex128) ([]complex128, error) {
	out := make([]complex128, len(zs))
	for i, z := range zs {
		w, err := m.Apply(z)
		if err != nil {
			return nil, fmt.Errorf("ApplyAll: index %d: %w", i, err)
		}
		out[i] = w
	}

	return out, nil
}

// Compose returns m∘other, the map that applies other first and m second.
func (m Map) Compose(other Map) Map {
	return Map{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Adjugate returns the projective inverse [[D, −B], [−C, A]].
//
// It differs from Inverse by the scalar det(m) and is the form used to pull
// back circle coefficients. Do not use it where the normalized inverse matrix
// is required.
func (m Map) Adjugate() Map {
	return Map{A: m.D, B: -m.B, C: -m.C, D: m.A}
}

// Inverse returns the matrix inverse Adjugate()/det.
// Returns ErrSingular if det == 0.
func (m Map) Inverse() (Map, error) {
	det := m.Det()
	if det == 0 {
		return Map{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}
	adj := m.Adjugate()

	return Map{A: adj.A / det, B: adj.B / det, C: adj.C / det, D: adj.D / det}, nil
}

// Normalize rescales m so that det == 1. The sign of the square root is the
// principal branch, so Normalize is defined up to ±1 like PSL(2, ℂ).
func (m Map) Normalize() (Map, error) {
	det := m.Det()
	if det == 0 {
		return Map{}, fmt.Errorf("Normalize: %w", ErrSingular)
	}
	s := cmplx.Sqrt(det)

	return Map{A: m.A / s, B: m.B / s, C: m.C / s, D: m.D / s}, nil
}

// Equal reports whether m and other describe the same transformation, i.e.
// m == λ·other for some non-zero λ, within the relative tolerance tol.
// A non-positive tol selects DefaultEpsilon.
func (m Map) Equal(other Map, tol float64) bool {
	if tol <= 0 {
		tol = DefaultEpsilon
	}
	u := m.entries()
	v := other.entries()
	nu, nv := norm(u), norm(v)
	if nu == 0 || nv == 0 {
		return nu == nv
	}
	// proportional vectors have all 2×2 minors equal to zero
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			if cmplx.Abs(u[i]*v[j]-u[j]*v[i]) > tol*nu*nv {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is projectively the identity within tol.
func (m Map) IsIdentity(tol float64) bool {
	return m.Equal(Identity(), tol)
}

// String renders the matrix as [[A B] [C D]].
func (m Map) String() string {
	return fmt.Sprintf("[[%v %v] [%v %v]]", m.A, m.B, m.C, m.D)
}

// entries lists the matrix entries in row-major order.
func (m Map) entries() [4]complex128 {
	return [4]complex128{m.A, m.B, m.C, m.D}
}

// finite reports whether every entry is finite.
func (m Map) finite() bool {
	for _, e := range m.entries() {
		if cmplx.IsNaN(e) || cmplx.IsInf(e) {
			return false
		}
	}

	return true
}

// singular compares |det| with the scale of the two products it is made of.
func (m Map) singular() bool {
	scale := cmplx.Abs(m.A*m.D) + cmplx.Abs(m.B*m.C)
	if scale == 0 {
		return true
	}

	return cmplx.Abs(m.Det()) <= DefaultEpsilon*scale
}

// norm is the Euclidean norm of a complex vector.
func norm(v [4]complex128) float64 {
	var s float64
	for _, e := range v {
		a := cmplx.Abs(e)
		s += a * a
	}

	return math.Sqrt(s)
}
