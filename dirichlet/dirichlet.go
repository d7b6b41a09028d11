// SPDX-License-Identifier: MIT

// Package dirichlet - bisector collection and dominance pruning.

package dirichlet

import (
	"fmt"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/orbit"
)

// ComputeBoundary returns the Dirichlet domain of g around the node center.
//
// Blueprint:
//
//	Stage 1 (Validate): options, graph, center node.
//	Stage 2 (Collect):  bisector of center and every other node, in discovery order.
//	Stage 3 (Filter):   skip degenerate and unreliable bisectors with a Warning.
//	Stage 4 (Prune):    incremental dominance test against the retained faces.
//
// Errors: ErrGraphNil, ErrOptionViolation, orbit.ErrNodeNotFound.
func ComputeBoundary(g *orbit.Graph, center orbit.NodeID, opts ...Option) (*Domain, error) {
	// Stage 1: validate
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	c, err := g.Node(center)
	if err != nil {
		return nil, fmt.Errorf("dirichlet: center: %w", err)
	}

	d := &Domain{Center: center, Point: c.Point}
	for i := 0; i < g.Len(); i++ {
		id := orbit.NodeID(i)
		if id == center {
			continue
		}
		n, _ := g.Node(id)

		// Stage 2: collect
		b, err := gcircle.Bisector(c.Point, n.Point)
		if err != nil {
			d.warn(o, Warning{Node: id, Point: n.Point, Err: err})
			continue
		}

		// Stage 3: filter
		if b.IsCircle() && b.Radius() > o.radiusLimit {
			d.warn(o, Warning{
				Node:   id,
				Point:  n.Point,
				Radius: b.Radius(),
				Err:    fmt.Errorf("%w: r=%g > %g", ErrUnreliableGeometry, b.Radius(), o.radiusLimit),
			})
			continue
		}

		// Stage 4: prune
		d.admit(Face{Node: id, Circle: b})
	}
	o.logger.Debug("dirichlet domain computed",
		"center", int(center),
		"faces", len(d.Faces),
		"warnings", len(d.Warnings),
	)

	return d, nil
}

// admit runs the triple-inclusion test of candidate against every retained
// face. Faces dominated by the candidate are dropped even when the candidate
// itself is rejected.
func (d *Domain) admit(candidate Face) {
	admissible := true
	kept := d.Faces[:0:0]
	for _, f := range d.Faces {
		// lines yield DominanceNone with ErrUnsupportedLine: both stay
		dom, _ := f.Circle.Dominance(d.Point, candidate.Circle)
		switch dom {
		case gcircle.SelfDominates:
			admissible = false
			kept = append(kept, f)
		case gcircle.OtherDominates:
			// f is dropped
		default:
			kept = append(kept, f)
		}
	}
	if admissible {
		kept = append(kept, candidate)
	}
	d.Faces = kept
}

func (d *Domain) warn(o options, w Warning) {
	d.Warnings = append(d.Warnings, w)
	o.logger.Warn("bisector skipped",
		"center", int(d.Center),
		"node", int(w.Node),
		"radius", w.Radius,
		"error", w.Err,
	)
}
