// SPDX-License-Identifier: MIT

// Package dirichlet computes the Dirichlet fundamental domain of a discrete
// group of disk isometries and tessellates the disk with its images.
//
// What
//
//   - ComputeBoundary: for a center node of an orbit.Graph, the minimal set
//     of hyperbolic bisectors between the center point and every other orbit
//     point, pruned by the triple-inclusion test (gcircle.Circle.Dominance).
//   - Propagate: the boundary of every other tile, obtained by transforming
//     each face by the node's group element relative to the center.
//   - Tessellate: ComputeBoundary at the root followed by Propagate.
//
// Pruning
//
//	Candidates arrive in orbit discovery order. For each candidate C and each
//	retained face F:
//	  - F dominates C: C is rejected;
//	  - C dominates F: F is removed;
//	  - otherwise, lines included: both stay.
//	The retained set is a fixed point: no face dominates another.
//
// Numeric policy
//
//	Bisectors whose radius exceeds the radius limit (DefaultRadiusLimit) are
//	too close to a line to be trusted. They are skipped, logged at Warn and
//	reported in Domain.Warnings with ErrUnreliableGeometry. Transform failures
//	during propagation are collected in Tessellation.Failures and logged at
//	Error; they never abort the run.
//
// Usage
//
//	g, err := orbit.Build(0, gens, 3)
//	t, err := dirichlet.Tessellate(g, dirichlet.WithLogger(logger))
//	for node, faces := range t.All() {
//		// render faces of the tile around node.Point
//	}
//
// Complexity (n = orbit size, f = number of faces)
//
//   - ComputeBoundary: O(n·f), at most O(n²).
//   - Propagate:       O(n·f).
package dirichlet
