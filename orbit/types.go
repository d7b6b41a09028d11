// SPDX-License-Identifier: MIT

// Package orbit - options, node records and sentinel errors.

package orbit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/dirichlet/mobius"
)

// DefaultEpsilon is the distance below which two orbit points are the same.
const DefaultEpsilon = 0.001

// DefaultMapTolerance is the relative tolerance used to pair generators with
// inverses already present in the input.
const DefaultMapTolerance = 1e-9

// Sentinel errors for orbit construction.
var (
	ErrNoGenerators      = errors.New("orbit: empty generating set")
	ErrIdentityGenerator = errors.New("orbit: generator is the identity")
	ErrBadDepth          = errors.New("orbit: max depth must be >= 0")
	ErrBadBasePoint      = errors.New("orbit: base point is not finite")
	ErrOptionViolation   = errors.New("orbit: invalid option supplied")
	ErrNodeNotFound      = errors.New("orbit: node not found")
)

// NodeID addresses a node in the orbit arena. The root is always 0.
type NodeID int

// Root is the ID of the base point.
const Root NodeID = 0

// NoParent marks the root's parent and generator.
const NoParent = -1

// Node is one orbit point in the Cayley tree.
type Node struct {
	ID NodeID

	// Parent is the node this one was generated from, NoParent at the root.
	Parent NodeID

	// Point is Map applied to the base point.
	Point complex128

	// Map is the accumulated group element, Generator ∘ parent.Map.
	Map mobius.Map

	// Generator indexes the doubled generating set, NoParent at the root.
	Generator int

	Depth    int
	Children []NodeID

	// Word spells Map in generator labels, outermost first ("" at the root).
	Word string
}

// Generator is one entry of the doubled generating set.
type Generator struct {
	Map mobius.Map

	// Inverse indexes the inverse entry; an involution points to itself.
	Inverse int

	Label string
}

// Coincidence records a discarded candidate: applying Generator to Parent
// landed within eps of the existing node Existing.
type Coincidence struct {
	Parent    NodeID
	Generator int
	Existing  NodeID
	Point     complex128
}

// Skip records a candidate that could not be computed: applying Generator
// to Parent failed with Err (mobius.ErrPole or mobius.ErrNonFinite).
type Skip struct {
	Parent    NodeID
	Generator int
	Err       error
}

// Option configures Build.
// Invalid values are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*options)

type options struct {
	eps     float64
	mapTol  float64
	onVisit func(Node) error
	logger  *slog.Logger
	err     error
}

func defaultOptions() options {
	return options{
		eps:     DefaultEpsilon,
		mapTol:  DefaultMapTolerance,
		onVisit: func(Node) error { return nil },
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

// WithEpsilon sets the deduplication distance (> 0).
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: eps must be finite and positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.eps = eps
	}
}

// WithMapTolerance sets the relative tolerance for projective equality of
// generators (> 0).
func WithMapTolerance(tol float64) Option {
	return func(o *options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: map tolerance must be finite and positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.mapTol = tol
	}
}

// WithOnVisit registers a callback run for every node as it is added,
// the root included. Returning an error aborts Build.
func WithOnVisit(fn func(Node) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithLogger sets the structured logger. Coincidences are logged at Debug,
// skipped candidates at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
