// SPDX-License-Identifier: MIT

// Package dirichlet - options, result records and sentinel errors.

package dirichlet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/orbit"
)

// DefaultRadiusLimit is the largest bisector radius still considered reliable.
const DefaultRadiusLimit = 1e5

// Sentinel errors for domain computation.
var (
	ErrGraphNil           = errors.New("dirichlet: orbit graph is nil")
	ErrDomainNil          = errors.New("dirichlet: domain is nil")
	ErrOptionViolation    = errors.New("dirichlet: invalid option supplied")
	ErrUnreliableGeometry = errors.New("dirichlet: bisector radius exceeds the reliability limit")
)

// Face is one side of a Dirichlet domain: the bisector between the center
// point and the point of Node.
type Face struct {
	Node   orbit.NodeID
	Circle gcircle.Circle
}

// Warning records a candidate bisector that was skipped.
type Warning struct {
	Node  orbit.NodeID
	Point complex128

	// Radius is the bisector radius when it could be built, 0 otherwise.
	Radius float64

	Err error
}

// Domain is the Dirichlet domain around Center.
type Domain struct {
	Center orbit.NodeID
	Point  complex128
	Faces  []Face

	Warnings []Warning
}

// Circles returns the face circles in face order.
func (d *Domain) Circles() []gcircle.Circle {
	out := make([]gcircle.Circle, len(d.Faces))
	for i, f := range d.Faces {
		out[i] = f.Circle
	}
	return out
}

// Neighbors returns the orbit nodes whose bisectors bound the domain.
func (d *Domain) Neighbors() []orbit.NodeID {
	out := make([]orbit.NodeID, len(d.Faces))
	for i, f := range d.Faces {
		out[i] = f.Node
	}
	return out
}

// Failure records a face that could not be transformed onto a tile.
type Failure struct {
	Node orbit.NodeID
	Face int
	Err  error
}

// Option configures ComputeBoundary and Tessellate.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*options)

type options struct {
	radiusLimit float64
	logger      *slog.Logger
	err         error
}

func defaultOptions() options {
	return options{
		radiusLimit: DefaultRadiusLimit,
		logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithRadiusLimit sets the largest admissible bisector radius (> 0).
func WithRadiusLimit(r float64) Option {
	return func(o *options) {
		if !(r > 0) || math.IsNaN(r) {
			o.err = fmt.Errorf("%w: radius limit must be positive (%g)", ErrOptionViolation, r)
			return
		}
		o.radiusLimit = r
	}
}

// WithLogger sets the structured logger. Skipped bisectors are logged at
// Warn, propagation failures at Error.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
