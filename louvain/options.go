// SPDX-License-Identifier: MIT

package louvain

import (
	"fmt"
	"log/slog"
)

// Defaults.
const (
	DefaultResolution = 1.0
	DefaultThreshold  = 1e-7
)

// Option configures a Detector. Option constructors panic on meaningless
// values; Fit never panics.
type Option func(*Detector)

// WithResolution sets γ. Values below 1 favour larger communities, above 1
// smaller ones. Panics unless γ > 0.
func WithResolution(gamma float64) Option {
	if !(gamma > 0) {
		panic(fmt.Sprintf("louvain: WithResolution(%g): must be > 0", gamma))
	}
	return func(d *Detector) { d.resolution = gamma }
}

// WithThreshold sets the minimal modularity gain between two levels for the
// algorithm to continue. Panics if negative.
func WithThreshold(eps float64) Option {
	if !(eps >= 0) {
		panic(fmt.Sprintf("louvain: WithThreshold(%g): must be >= 0", eps))
	}
	return func(d *Detector) { d.threshold = eps }
}

// WithSeed sets the seed of the visiting-order shuffle. Zero selects
// community.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(d *Detector) { d.seed = seed }
}

// WithMaxLevels caps the number of levels; 0 means unbounded.
// Panics if negative.
func WithMaxLevels(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("louvain: WithMaxLevels(%d): must be >= 0", n))
	}
	return func(d *Detector) { d.maxLevels = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("louvain: WithLogger(nil)")
	}
	return func(d *Detector) { d.log = l }
}
