// SPDX-License-Identifier: MIT

// Package orbit - breadth-first Cayley tree expansion.

package orbit

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/dirichlet/mobius"
)

// Graph is the orbit tree. Its topology is immutable once Build returns.
type Graph struct {
	base         complex128
	maxDepth     int
	eps          float64
	gens         []Generator
	nodes        []Node
	coincidences []Coincidence
	skipped      []Skip
}

// walker encapsulates mutable expansion state.
type walker struct {
	g     *Graph
	opts  options
	queue []NodeID
	index *pointIndex
}

// Build expands the orbit of base under generators up to maxDepth
// generator applications.
//
// Blueprint:
//
//	Stage 1 (Validate): options, base point, depth, non-empty generating set.
//	Stage 2 (Close):    add inverses, pair each generator with its inverse.
//	Stage 3 (Seed):     root node (base, identity) in queue and index.
//	Stage 4 (Expand):   FIFO loop; skip backtracking, discard coincidences,
//	                    record candidates sent to ∞ and carry on.
func Build(base complex128, generators []mobius.Map, maxDepth int, opts ...Option) (*Graph, error) {
	// Stage 1: validate
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cmplx.IsNaN(base) || cmplx.IsInf(base) {
		return nil, ErrBadBasePoint
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, maxDepth)
	}
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}

	// Stage 2: close under inverses
	gens, err := double(generators, o.mapTol)
	if err != nil {
		return nil, err
	}

	// Stage 3: seed
	g := &Graph{base: base, maxDepth: maxDepth, eps: o.eps, gens: gens}
	w := &walker{
		g:     g,
		opts:  o,
		index: newPointIndex(o.eps, 1+len(gens)),
	}
	root := Node{
		ID:        Root,
		Parent:    NoParent,
		Point:     base,
		Map:       mobius.Identity(),
		Generator: NoParent,
	}
	if err = w.enqueue(root); err != nil {
		return nil, err
	}

	// Stage 4: expand
	if err = w.loop(); err != nil {
		return nil, err
	}
	o.logger.Debug("orbit built",
		"nodes", len(g.nodes),
		"generators", len(gens),
		"coincidences", len(g.coincidences),
		"skipped", len(g.skipped),
		"max_depth", maxDepth,
	)

	return g, nil
}

// enqueue stores n in the arena and the index, links it to its parent,
// runs OnVisit and schedules it for expansion.
func (w *walker) enqueue(n Node) error {
	n.ID = NodeID(len(w.g.nodes))
	w.g.nodes = append(w.g.nodes, n)
	if n.Parent != NoParent {
		p := &w.g.nodes[n.Parent]
		p.Children = append(p.Children, n.ID)
	}
	w.index.insert(n.ID, n.Point)
	if err := w.opts.onVisit(n); err != nil {
		return fmt.Errorf("orbit: OnVisit error at node %d: %w", n.ID, err)
	}
	w.queue = append(w.queue, n.ID)

	return nil
}

// loop processes the queue until it is empty or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.expand(id); err != nil {
			return err
		}
	}
	return nil
}

// expand applies every admissible generator to node id.
func (w *walker) expand(id NodeID) error {
	n := w.g.nodes[id]
	if n.Depth >= w.g.maxDepth {
		return nil
	}
	for gi, gen := range w.g.gens {
		// no immediate backtracking
		if n.Generator != NoParent && gi == w.g.gens[n.Generator].Inverse {
			continue
		}
		q, err := gen.Map.Apply(n.Point)
		if err != nil {
			w.g.skipped = append(w.g.skipped, Skip{Parent: id, Generator: gi, Err: err})
			w.opts.logger.Warn("orbit candidate skipped",
				"parent", int(id),
				"generator", gen.Label,
				"word", gen.Label+n.Word,
				"error", err,
			)
			continue
		}
		if existing, ok := w.index.near(q); ok {
			w.g.coincidences = append(w.g.coincidences, Coincidence{
				Parent: id, Generator: gi, Existing: existing, Point: q,
			})
			w.opts.logger.Debug("orbit point already known",
				"parent", int(id),
				"generator", gen.Label,
				"existing", int(existing),
				"word", gen.Label+n.Word,
			)
			continue
		}
		child := Node{
			Parent:    id,
			Point:     q,
			Map:       gen.Map.Compose(n.Map),
			Generator: gi,
			Depth:     n.Depth + 1,
			Word:      gen.Label + n.Word,
		}
		if err = w.enqueue(child); err != nil {
			return err
		}
	}

	return nil
}
