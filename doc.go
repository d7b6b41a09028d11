// Package dirichlet is a toolkit for Dirichlet fundamental domains of
// discrete groups of Möbius transformations acting on the Poincaré disk.
//
// What is inside?
//
//	Given a base point and a few generating isometries, the module expands the
//	orbit of the point as a Cayley tree, bounds the base point's Dirichlet
//	domain by hyperbolic bisectors, prunes redundant sides and copies the
//	domain onto every orbit point. The result is a tessellation of the disk
//	ready to be handed to a renderer.
//
// Packages, leaf first:
//
//	mobius/     — Möbius maps as 2×2 complex matrices, cross ratios
//	gcircle/    — generalized circles: bisectors, images, dominance, sampling
//	orbit/      — breadth-first orbit tree with duplicate-point detection
//	dirichlet/  — domain boundary, propagation, tessellation
//	hyperbolic/ — disk and half-plane metrics, Cayley transforms, neighbours
//	schottky/   — Schottky generators from paired geodesics
//
// Quick example:
//
//	gens, _ := schottky.Generators(schottky.Classic()...)
//	g, _ := orbit.Build(0, gens, 2)          // 17 orbit points
//	t, _ := dirichlet.Tessellate(g)          // 4 geodesic sides per tile
//	for node, faces := range t.All() {
//		for _, c := range faces {
//			for p := range c.Samples(64) { plot(node, p) }
//		}
//	}
//
// Everything is single-threaded and synchronous; all results are plain
// values or immutable after construction.
//
//	go get github.com/katalvlaran/dirichlet
package dirichlet
