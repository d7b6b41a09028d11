// SPDX-License-Identifier: MIT

// Package gcircle - kinds, dominance outcomes, options and sentinel errors.

package gcircle

import (
	"errors"
	"math"
)

// DefaultEpsilon is the relative tolerance that decides whether a coefficient
// vanishes compared to the largest coefficient of the form.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "gcircle: WithEpsilon: eps must be finite and positive"

var (
	// ErrDegenerateInput is returned when the input does not describe a
	// circle or a line: the zero form, a form with no real points, two
	// identical bisector points, or a triple that cannot be built.
	ErrDegenerateInput = errors.New("gcircle: degenerate input")

	// ErrInconsistentTransform is returned when a transformed form loses its
	// leading coefficient (a' ≈ 0) while the constant term d' stays non-zero.
	ErrInconsistentTransform = errors.New("gcircle: inconsistent transform")

	// ErrUnsupportedLine is returned by circle-only predicates invoked on a line.
	ErrUnsupportedLine = errors.New("gcircle: operation not supported for lines")

	// ErrNonFinite is returned when coefficients or results are NaN or ±Inf.
	ErrNonFinite = errors.New("gcircle: NaN or Inf encountered")
)

// Kind tells circles from lines.
type Kind int

const (
	// KindCircle is a proper circle with finite center and positive radius.
	KindCircle Kind = iota

	// KindLine is a line through the origin.
	KindLine
)

// String returns "circle" or "line".
func (k Kind) String() string {
	if k == KindLine {
		return "line"
	}
	return "circle"
}

// Dominance is the outcome of the triple-inclusion test between two circles
// relative to a reference point.
type Dominance int

const (
	// DominanceNone means neither disk determines the other's side of space.
	DominanceNone Dominance = iota

	// SelfDominates means the receiver makes the other circle redundant.
	SelfDominates

	// OtherDominates means the argument makes the receiver redundant.
	OtherDominates
)

// String names the outcome.
func (d Dominance) String() string {
	switch d {
	case SelfDominates:
		return "self-dominates"
	case OtherDominates:
		return "other-dominates"
	default:
		return "none"
	}
}

// Option configures coefficient validation.
type Option func(*options)

type options struct {
	eps float64
}

func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

// WithEpsilon sets the relative tolerance used to decide c ≈ conj(b),
// a ≈ 0 and d ≈ 0. Panics on a non-positive or non-finite eps.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) {
		o.eps = eps
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
