// SPDX-License-Identifier: MIT

// Package orbit - closing a generating set under inverses.

package orbit

import (
	"fmt"

	"github.com/katalvlaran/dirichlet/mobius"
)

// double returns the generating set closed under inverses, ordered
// g0, g0⁻¹, g1, g1⁻¹, … with labels a, A, b, B, …
// An input already present (e.g. a user-supplied inverse) is skipped.
func double(gens []mobius.Map, tol float64) ([]Generator, error) {
	out := make([]Generator, 0, 2*len(gens))
	letter := 0
	for i, g := range gens {
		if g.IsIdentity(tol) {
			return nil, fmt.Errorf("%w: index %d", ErrIdentityGenerator, i)
		}
		if present(out, g, tol) {
			continue
		}
		inv, err := g.Inverse()
		if err != nil {
			return nil, fmt.Errorf("orbit: generator %d: %w", i, err)
		}

		k := len(out)
		lower, upper := labels(letter)
		letter++
		if g.Equal(inv, tol) {
			out = append(out, Generator{Map: g, Inverse: k, Label: lower})
			continue
		}
		out = append(out,
			Generator{Map: g, Inverse: k + 1, Label: lower},
			Generator{Map: inv, Inverse: k, Label: upper},
		)
	}

	return out, nil
}

func present(gens []Generator, g mobius.Map, tol float64) bool {
	for _, e := range gens {
		if e.Map.Equal(g, tol) {
			return true
		}
	}
	return false
}

// labels names the n-th generator pair: a/A … z/Z, then g26/G26, …
func labels(n int) (string, string) {
	if n < 26 {
		r := rune('a' + n)
		return string(r), string(r - 'a' + 'A')
	}
	return fmt.Sprintf("g%d", n), fmt.Sprintf("G%d", n)
}
