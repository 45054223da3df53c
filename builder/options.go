// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Empty prefixes mean "use defaults", not an error.

package builder

import (
	"fmt"
	"math"
)

// BuilderOption customizes constructor behavior before the topology is emitted.
type BuilderOption func(*builderConfig)

// WithTerminalPrefix sets the terminal ID prefix used by Grid and Path.
func WithTerminalPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) { c.terminalPrefix = prefix }
}

// WithConnectorPrefix sets the connector ID prefix used by Grid and Path.
func WithConnectorPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) { c.connectorPrefix = prefix }
}

// WithConductance sets the uniform conductance of Grid and Path links.
// Panics unless g is positive and finite.
func WithConductance(g float64) BuilderOption {
	if !(g > 0) || math.IsInf(g, 0) {
		panic(fmt.Sprintf("builder: WithConductance(%v)", g))
	}
	return func(c *builderConfig) { c.conductance = g }
}

// WithUnitConductance ignores every conductance and length and emits ±1 incidences.
func WithUnitConductance() BuilderOption {
	return func(c *builderConfig) { c.unit = true }
}

// linkConductance resolves the conductance a synthetic constructor should emit.
func (c builderConfig) linkConductance() float64 {
	if c.unit {
		return 1
	}

	return c.conductance
}
