// SPDX-License-Identifier: MIT

// Package orbit builds the orbit of a base point under a finitely generated
// group of Möbius transformations, organized as a rooted Cayley tree.
//
// What
//
//   - The generating set is closed under inverses at build time: each input
//     map g is followed by g⁻¹ (labels a, A, b, B, …) unless the inverse is
//     already present; involutions pair with themselves.
//   - Expansion is breadth-first from the root (base point, identity map).
//     At a node reached by g, the generator g⁻¹ is skipped (no backtracking).
//   - A candidate point within eps of any point already in the tree is
//     discarded and logged as a Coincidence: it reveals a relation of the
//     group or a non-trivial stabilizer.
//   - A candidate the generator sends to ∞ is recorded as a Skip, logged at
//     Warn, and expansion continues with the next generator.
//   - Nodes at depth maxDepth are recorded but never expanded.
//   - Every node carries the accumulated map sending the base point to it and
//     the word (generator labels, outermost first) of that element.
//
// Determinism
//
//	Generators are tried in their doubled order and the queue is FIFO, so the
//	tree is reproducible. Among coincident points the first discovered one,
//	which has the shortest word, wins.
//
// Complexity (N = nodes, k = |doubled generating set|)
//
//   - Time:   O(N·k) map applications, O(1) expected per duplicate lookup (grid index).
//   - Memory: O(N) for the node arena and the index.
//
// Usage
//
//	g, err := orbit.Build(0, []mobius.Map{a, b}, 3,
//		orbit.WithEpsilon(1e-4),
//		orbit.WithLogger(logger),
//	)
//	for n := range g.Nodes() { // pre-order
//		fmt.Println(n.Word, n.Point)
//	}
//
// Errors
//
//   - ErrNoGenerators       if the generating set is empty.
//   - ErrIdentityGenerator  if a generator is projectively the identity.
//   - ErrBadDepth           if maxDepth < 0.
//   - ErrBadBasePoint       if the base point is NaN or ±Inf.
//   - ErrOptionViolation    for invalid options (e.g. eps ≤ 0).
//   - ErrNodeNotFound       for lookups of unknown node IDs.
//   - Wrapped mobius errors for a singular generator, and wrapped OnVisit
//     hook errors.
package orbit
