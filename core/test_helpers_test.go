// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/reffgrid/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	TermA = "N_A"
	TermB = "N_B"
	TermC = "N_C"
	TermD = "N_D"

	LineAB = "L_AB"
	LineBC = "L_BC"
	LineCA = "L_CA"
)

// Common conductances (avoid magic numbers in test bodies).
const (
	Unit = 1.0
	Four = 4.0
)

// pathABC builds N_A - L_AB - N_B - L_BC - N_C with unit conductance.
func pathABC(t *testing.T) *core.Topology {
	t.Helper()
	e := core.NewEditor()
	for _, id := range []string{TermA, TermB, TermC} {
		require.NoError(t, e.AddTerminal(core.Terminal{ID: id}))
	}
	require.NoError(t, e.AddConnector(core.Connector{ID: LineAB, Ends: [2]string{TermA, TermB}, Conductance: Unit}))
	require.NoError(t, e.AddConnector(core.Connector{ID: LineBC, Ends: [2]string{TermB, TermC}, Conductance: Unit}))

	return e.Topology()
}

// triangle builds the three-terminal ring A-B-C-A; LineCA has conductance 4.
func triangle(t *testing.T) *core.Topology {
	t.Helper()
	e := pathABC(t).Edit()
	require.NoError(t, e.AddConnector(core.Connector{ID: LineCA, Ends: [2]string{TermC, TermA}, Conductance: Four}))

	return e.Topology()
}
