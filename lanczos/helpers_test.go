// SPDX-License-Identifier: MIT
// Package lanczos_test contains fixtures shared by the engine tests.

package lanczos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reffgrid/builder"
	"github.com/katalvlaran/reffgrid/core"
)

const tol = 1e-12

// singleLine builds A -L- C with unit conductance.
func singleLine(t testing.TB) *core.Topology {
	t.Helper()
	e := core.NewEditor()
	require.NoError(t, e.AddTerminal(core.Terminal{ID: "A"}))
	require.NoError(t, e.AddTerminal(core.Terminal{ID: "C"}))
	require.NoError(t, e.AddConnector(core.Connector{ID: "L", Ends: [2]string{"A", "C"}, Conductance: 1}))

	return e.Topology()
}

func path(t testing.TB, n int) *core.Topology {
	t.Helper()
	topo, err := builder.BuildTopology(nil, builder.Path(n))
	require.NoError(t, err)

	return topo
}

func grid(t testing.TB, rows, cols int) *core.Topology {
	t.Helper()
	topo, err := builder.BuildTopology(nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	return topo
}

// specOf rebuilds t as a Spec, leaving out the connectors in skip.
func specOf(t testing.TB, topo *core.Topology, skip ...string) builder.Spec {
	t.Helper()
	drop := make(map[string]bool, len(skip))
	for _, id := range skip {
		drop[id] = true
	}
	var s builder.Spec
	for _, id := range topo.Terminals() {
		n, err := topo.Terminal(id)
		require.NoError(t, err)
		s.Terminals = append(s.Terminals, builder.TerminalSpec{ID: id, X: n.Pos.X, Y: n.Pos.Y})
	}
	for _, id := range topo.Connectors() {
		if drop[id] {
			continue
		}
		c, err := topo.Connector(id)
		require.NoError(t, err)
		s.Connectors = append(s.Connectors, builder.ConnectorSpec{ID: id, A: c.Ends[0], B: c.Ends[1], Conductance: c.Conductance})
	}

	return s
}
