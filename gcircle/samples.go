// SPDX-License-Identifier: MIT

// Package gcircle - point sampling for renderers.

package gcircle

import (
	"iter"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r2"
)

// Samples returns a lazy, finite and restartable sequence of n points of g.
//
//   - Circle: the arc facing the origin, angles γ + t for t ∈ [−α, α] with
//     α = acos(r/|c|) and γ = arg(c) + π. For a geodesic this is exactly the
//     part inside the unit disk. Nothing is yielded when r/|c| > 1.
//   - Line: t·v for t ∈ [−1, 1].
//
// n == 1 yields the midpoint of the range; n ≤ 0 yields nothing.
func (g Circle) Samples(n int) iter.Seq[r2.Vec] {
	return func(yield func(r2.Vec) bool) {
		if n <= 0 {
			return
		}
		if g.IsLine() {
			for k := 0; k < n; k++ {
				z := complex(param(k, n, 1), 0) * g.direction
				if !yield(r2.Vec{X: real(z), Y: imag(z)}) {
					return
				}
			}
			return
		}

		abs := cmplx.Abs(g.center)
		if abs == 0 || g.radius > abs {
			return
		}
		alpha := math.Acos(g.radius / abs)
		gamma := cmplx.Phase(g.center) + math.Pi
		r := complex(g.radius, 0)
		for k := 0; k < n; k++ {
			z := g.center + r*cmplx.Exp(complex(0, gamma+param(k, n, alpha)))
			if !yield(r2.Vec{X: real(z), Y: imag(z)}) {
				return
			}
		}
	}
}

// param spreads n samples evenly over [−span, span].
func param(k, n int, span float64) float64 {
	if n == 1 {
		return 0
	}
	return -span + 2*span*float64(k)/float64(n-1)
}
