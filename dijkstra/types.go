// SPDX-License-Identifier: MIT
// Package: reffgrid/dijkstra
//
// types.go: sentinel errors and functional options.
//
// Options:
//
//	– Source:        terminal to start from (required).
//	– Target:        optional terminal; the search stops once it is settled.
//	– ReturnPath:    return the predecessor map.
//	– MaxResistance: terminals farther than this are not settled.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source terminal was given.
	ErrEmptySource = errors.New("dijkstra: source terminal ID is empty")

	// ErrNilTopology indicates that a nil *core.Topology was passed.
	ErrNilTopology = errors.New("dijkstra: topology is nil")

	// ErrBadMaxResistance indicates a negative or NaN resistance cap.
	ErrBadMaxResistance = errors.New("dijkstra: MaxResistance must be non-negative")
)

// Options configures the behavior of the search.
type Options struct {
	Source        string  // starting terminal
	Target        string  // optional early-exit terminal
	ReturnPath    bool    // whether to return the predecessor map
	MaxResistance float64 // series resistance beyond which terminals are skipped
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting terminal.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target stops the search as soon as id is settled. Distances of terminals
// settled after it are left at +Inf.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxResistance caps the explored series resistance.
// Panics if max is negative or NaN.
func WithMaxResistance(max float64) Option {
	if !(max >= 0) {
		panic(fmt.Sprintf("%s (%v)", ErrBadMaxResistance, max))
	}
	return func(o *Options) { o.MaxResistance = max }
}

// DefaultOptions returns the defaults for source: no target, no predecessor
// map, no resistance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:        source,
		MaxResistance: math.Inf(1),
	}
}
