// SPDX-License-Identifier: MIT

// Package hyperbolic provides the hyperbolic metric of the Poincaré disk and
// the upper half-plane, the Cayley transforms between both models and
// nearest-neighbour selection among orbit points.
//
// Models
//
//	disk:       |z| < 1,   cosh d(x, y) = 1 + 2|x−y|² / ((1−|x|²)(1−|y|²))
//	half-plane: Im w > 0,  cosh d(x, y) = 1 + |x−y|² / (2·Im x·Im y)
//
// ToUpperHalfPlane and ToDisk are isometries, so both distances agree on
// corresponding points.
package hyperbolic

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/dirichlet/mobius"
)

// ErrOutsideModel is returned for a point that is not in the model:
// |z| ≥ 1 for the disk, Im w ≤ 0 for the half-plane.
var ErrOutsideModel = errors.New("hyperbolic: point outside the model")

// cayley is z ↦ (z + i)/(iz + 1), sending the unit disk onto the upper half-plane.
var cayley = mobius.Map{A: 1, B: 1i, C: 1i, D: 1}

// ToUpperHalfPlane maps a disk point to the upper half-plane.
func ToUpperHalfPlane(z complex128) (complex128, error) {
	if err := inDisk(z); err != nil {
		return 0, err
	}
	return cayley.Apply(z)
}

// ToDisk maps a half-plane point to the unit disk.
func ToDisk(w complex128) (complex128, error) {
	if err := inHalfPlane(w); err != nil {
		return 0, err
	}
	return cayley.Adjugate().Apply(w)
}

// Distance returns the hyperbolic distance between two disk points.
func Distance(x, y complex128) (float64, error) {
	if err := inDisk(x); err != nil {
		return 0, err
	}
	if err := inDisk(y); err != nil {
		return 0, err
	}
	d := cmplx.Abs(x - y)
	nx, ny := cmplx.Abs(x), cmplx.Abs(y)

	return math.Acosh(1 + 2*d*d/((1-nx*nx)*(1-ny*ny))), nil
}

// DistanceUpperHalfPlane returns the hyperbolic distance between two
// half-plane points.
func DistanceUpperHalfPlane(x, y complex128) (float64, error) {
	if err := inHalfPlane(x); err != nil {
		return 0, err
	}
	if err := inHalfPlane(y); err != nil {
		return 0, err
	}
	d := cmplx.Abs(x - y)

	return math.Acosh(1 + d*d/(2*imag(x)*imag(y))), nil
}

// Neighbours returns the indices of the points whose distance from p is
// below twice the smallest distance from p. Points coinciding with p do not
// count. The result follows the order of points and is empty when no point
// differs from p.
func Neighbours(p complex128, points []complex128) ([]int, error) {
	dist := make([]float64, len(points))
	least := math.Inf(1)
	for i, q := range points {
		d, err := Distance(p, q)
		if err != nil {
			return nil, fmt.Errorf("Neighbours: point %d: %w", i, err)
		}
		dist[i] = d
		if d > 0 && d < least {
			least = d
		}
	}

	var out []int
	for i, d := range dist {
		if d > 0 && d < 2*least {
			out = append(out, i)
		}
	}

	return out, nil
}

func inDisk(z complex128) error {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) || !(cmplx.Abs(z) < 1) {
		return fmt.Errorf("%w: |%v| >= 1", ErrOutsideModel, z)
	}
	return nil
}

func inHalfPlane(w complex128) error {
	if cmplx.IsNaN(w) || cmplx.IsInf(w) || !(imag(w) > 0) {
		return fmt.Errorf("%w: Im %v <= 0", ErrOutsideModel, w)
	}
	return nil
}
