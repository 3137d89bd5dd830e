// SPDX-License-Identifier: MIT

package lpa

import (
	"fmt"
	"log/slog"
)

// Mode selects the update schedule.
type Mode string

const (
	// ModeAsync updates vertices one at a time.
	ModeAsync Mode = "async"
	// ModeSemi updates colour classes with Prec-Max tie breaking.
	ModeSemi Mode = "semi"
)

// DefaultMaxSweeps caps the number of sweeps a Fit may run.
const DefaultMaxSweeps = 10000

// Option configures a Detector. Option constructors panic on meaningless
// values; an unsupported Mode is reported by Fit instead.
type Option func(*Detector)

// WithMode selects the update schedule.
func WithMode(m Mode) Option {
	return func(d *Detector) { d.mode = m }
}

// WithAlpha sets the factor applied to in-edge weights on directed graphs.
// Panics if negative.
func WithAlpha(alpha float64) Option {
	if !(alpha >= 0) {
		panic(fmt.Sprintf("lpa: WithAlpha(%g): must be >= 0", alpha))
	}
	return func(d *Detector) { d.alpha = alpha }
}

// WithBeta sets the factor applied to out-edge weights on directed graphs.
// Panics if negative.
func WithBeta(beta float64) Option {
	if !(beta >= 0) {
		panic(fmt.Sprintf("lpa: WithBeta(%g): must be >= 0", beta))
	}
	return func(d *Detector) { d.beta = beta }
}

// WithSeed sets the RNG seed. Zero selects community.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(d *Detector) { d.seed = seed }
}

// WithMaxSweeps caps the number of sweeps. Panics unless n > 0.
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("lpa: WithMaxSweeps(%d): must be > 0", n))
	}
	return func(d *Detector) { d.maxSweeps = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lpa: WithLogger(nil)")
	}
	return func(d *Detector) { d.log = l }
}
