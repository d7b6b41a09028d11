// SPDX-License-Identifier: MIT

// Package orbit - read-only access to a built orbit tree.

package orbit

import (
	"fmt"
	"iter"
	"slices"
)

// Len returns the number of orbit points, the base point included.
func (g *Graph) Len() int { return len(g.nodes) }

// Base returns the base point.
func (g *Graph) Base() complex128 { return g.base }

// MaxDepth returns the configured depth bound.
func (g *Graph) MaxDepth() int { return g.maxDepth }

// Epsilon returns the deduplication distance.
func (g *Graph) Epsilon() float64 { return g.eps }

// Root returns the base node.
func (g *Graph) Root() Node {
	return g.copyNode(Root)
}

// Node returns the node with the given ID or ErrNodeNotFound.
func (g *Graph) Node(id NodeID) (Node, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return g.copyNode(id), nil
}

// Generators returns the doubled generating set.
func (g *Graph) Generators() []Generator {
	return slices.Clone(g.gens)
}

// Coincidences returns every discarded candidate in discovery order.
func (g *Graph) Coincidences() []Coincidence {
	return slices.Clone(g.coincidences)
}

// Skipped returns every candidate whose image could not be computed, in
// discovery order.
func (g *Graph) Skipped() []Skip {
	return slices.Clone(g.skipped)
}

// Points returns the orbit points in discovery (breadth-first) order.
func (g *Graph) Points() []complex128 {
	out := make([]complex128, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Point
	}
	return out
}

// Nodes iterates the tree in pre-order: a node precedes its subtree and
// children follow generator order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if len(g.nodes) == 0 {
			return
		}
		stack := []NodeID{Root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(g.copyNode(id)) {
				return
			}
			children := g.nodes[id].Children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// PathTo returns the node IDs from the root to id, both included.
func (g *Graph) PathTo(id NodeID) ([]NodeID, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	path := []NodeID{}
	for cur := id; cur != NoParent; cur = g.nodes[cur].Parent {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// copyNode hands out a node whose Children slice does not alias the arena.
func (g *Graph) copyNode(id NodeID) Node {
	n := g.nodes[id]
	n.Children = slices.Clone(n.Children)
	return n
}
