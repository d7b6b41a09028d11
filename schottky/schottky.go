// SPDX-License-Identifier: MIT

// Package schottky builds Schottky groups: each generator pairs two disjoint
// geodesic circles of the Poincaré disk, mapping the first onto the second.
//
// Usage
//
//	gens, err := schottky.Generators(schottky.Classic()...)
//	g, err := orbit.Build(0, gens, 2)
package schottky

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/mobius"
)

// ErrNoPairings is returned when Generators receives no pairings.
var ErrNoPairings = errors.New("schottky: no circle pairings")

// Pairing maps the circle From onto the circle To.
type Pairing struct {
	From, To gcircle.Circle
}

// Generators returns one generator per pairing, From.TransformationTo(To).
func Generators(pairings ...Pairing) ([]mobius.Map, error) {
	if len(pairings) == 0 {
		return nil, ErrNoPairings
	}
	out := make([]mobius.Map, 0, len(pairings))
	for i, p := range pairings {
		m, err := p.From.TransformationTo(p.To)
		if err != nil {
			return nil, fmt.Errorf("schottky: pairing %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// Classic returns the four-circle configuration
//
//	(√2, 1)   ↔ (−√1.25, ½)
//	(√2·i, 1) ↔ (−√1.25·i, ½)
//
// of geodesics orthogonal to the unit circle, generating a free group of rank 2.
func Classic() []Pairing {
	s2, s125 := math.Sqrt2, math.Sqrt(1.25)

	return []Pairing{
		{From: mustCircle(complex(s2, 0), 1), To: mustCircle(complex(-s125, 0), 0.5)},
		{From: mustCircle(complex(0, s2), 1), To: mustCircle(complex(0, -s125), 0.5)},
	}
}

// mustCircle is only used with the constant radii above.
func mustCircle(center complex128, radius float64) gcircle.Circle {
	g, err := gcircle.FromCenterRadius(center, radius)
	if err != nil {
		panic(err)
	}
	return g
}
