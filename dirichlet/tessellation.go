// SPDX-License-Identifier: MIT

// Package dirichlet - propagation of a domain to every orbit node.

package dirichlet

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/orbit"
)

// Tessellation holds one boundary per orbit node. The orbit graph is never
// modified; boundaries live in a side table keyed by node ID.
type Tessellation struct {
	Graph  *orbit.Graph
	Domain *Domain

	// Failures lists every face that could not be transformed.
	Failures []Failure

	boundaries map[orbit.NodeID][]gcircle.Circle
}

// Tessellate computes the domain around the root of g and propagates it.
func Tessellate(g *orbit.Graph, opts ...Option) (*Tessellation, error) {
	d, err := ComputeBoundary(g, orbit.Root, opts...)
	if err != nil {
		return nil, err
	}
	return Propagate(g, d, opts...)
}

// Propagate transforms every face of domain onto each other node n of g by
// n.Map ∘ center.Map⁻¹, which is n.Map when the center is the root.
// The center keeps the domain faces unchanged.
//
// A face that fails to transform is skipped on that tile, recorded in
// Failures and logged at Error.
//
// Errors: ErrGraphNil, ErrDomainNil, ErrOptionViolation, orbit.ErrNodeNotFound,
// mobius.ErrSingular.
func Propagate(g *orbit.Graph, domain *Domain, opts ...Option) (*Tessellation, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if domain == nil {
		return nil, ErrDomainNil
	}
	c, err := g.Node(domain.Center)
	if err != nil {
		return nil, fmt.Errorf("dirichlet: center: %w", err)
	}
	back, err := c.Map.Inverse()
	if err != nil {
		return nil, fmt.Errorf("dirichlet: center map: %w", err)
	}

	t := &Tessellation{
		Graph:      g,
		Domain:     domain,
		boundaries: make(map[orbit.NodeID][]gcircle.Circle, g.Len()),
	}
	faces := domain.Circles()
	for i := 0; i < g.Len(); i++ {
		id := orbit.NodeID(i)
		if id == domain.Center {
			t.boundaries[id] = faces
			continue
		}
		n, _ := g.Node(id)
		m := n.Map.Compose(back)

		tile := make([]gcircle.Circle, 0, len(faces))
		for fi, f := range faces {
			img, err := f.TransformBy(m)
			if err != nil {
				t.Failures = append(t.Failures, Failure{Node: id, Face: fi, Err: err})
				o.logger.Error("face transform failed",
					"node", i,
					"word", n.Word,
					"face", fi,
					"error", err,
				)
				continue
			}
			tile = append(tile, img)
		}
		t.boundaries[id] = tile
	}

	return t, nil
}

// Boundary returns the faces of the tile around node id.
func (t *Tessellation) Boundary(id orbit.NodeID) ([]gcircle.Circle, error) {
	b, ok := t.boundaries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", orbit.ErrNodeNotFound, id)
	}
	return append([]gcircle.Circle(nil), b...), nil
}

// All iterates the tiles in pre-order of the orbit tree.
func (t *Tessellation) All() iter.Seq2[orbit.Node, []gcircle.Circle] {
	return func(yield func(orbit.Node, []gcircle.Circle) bool) {
		for n := range t.Graph.Nodes() {
			if !yield(n, append([]gcircle.Circle(nil), t.boundaries[n.ID]...)) {
				return
			}
		}
	}
}

// Geodesics returns the distinct geodesic circles of all tiles, in pre-order
// of first appearance. Two circles are the same when their forms agree within
// the relative tolerance eps.
func (t *Tessellation) Geodesics(eps float64) []gcircle.Circle {
	var out []gcircle.Circle
	for _, tile := range t.All() {
		for _, c := range tile {
			if !c.IsGeodesic(eps) || containsCircle(out, c, eps) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func containsCircle(cs []gcircle.Circle, c gcircle.Circle, tol float64) bool {
	for _, e := range cs {
		if e.Equal(c, tol) {
			return true
		}
	}
	return false
}
