// SPDX-License-Identifier: MIT
// Package: chartscale/scale
//
// options.go - functional options for InferType and CreateScale.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//     InferType/SetDomain/SetRange/CreateScale themselves never panic.
//   - Options are applied in order; later options override earlier ones.
//   - No globals: every knob flows through config.

package scale

import (
	"math"
	"time"
)

// Defaults (single source of truth).
const (
	// DefaultLogThreshold is the max/min ratio above which an all-positive
	// numeric field is classified as logarithmic.
	DefaultLogThreshold = 1000.0

	// DefaultPadding is the band padding ratio applied between and around
	// categorical bands.
	DefaultPadding = 0.1
)

// Option customizes inference and scale construction.
type Option func(*config)

// config aggregates all knobs; passed by value.
type config struct {
	logThreshold float64
	padding      float64
	loc          *time.Location
	rng          []float64 // nil means "domain-only scale"
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		logThreshold: DefaultLogThreshold,
		padding:      DefaultPadding,
		loc:          time.UTC,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogThreshold overrides the max/min ratio that triggers a logarithmic
// classification. Panics if ratio <= 1 or is not finite.
func WithLogThreshold(ratio float64) Option {
	if !(ratio > 1) || math.IsInf(ratio, 0) {
		panic("scale: WithLogThreshold(ratio<=1)")
	}
	return func(c *config) {
		c.logThreshold = ratio
	}
}

// WithPadding overrides the band padding ratio. Panics outside [0,1).
func WithPadding(p float64) Option {
	if !(p >= 0 && p < 1) {
		panic("scale: WithPadding(p outside [0,1))")
	}
	return func(c *config) {
		c.padding = p
	}
}

// WithLocation sets the location used for date strings that carry no zone
// (M/D/YYYY, "Jan 5, 2024", YYYY-M-D, ISO date-times without offset).
// ISO date-only strings are always UTC. Panics on nil.
func WithLocation(loc *time.Location) Option {
	if loc == nil {
		panic("scale: WithLocation(nil)")
	}
	return func(c *config) {
		c.loc = loc
	}
}

// WithRange makes CreateScale apply the output interval [r0, r1].
// InferType ignores it.
func WithRange(r0, r1 float64) Option {
	return func(c *config) {
		c.rng = []float64{r0, r1}
	}
}
