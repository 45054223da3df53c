// SPDX-License-Identifier: MIT
// Package core_test verifies Editor contracts: validation, removal and
// copy-on-write snapshots.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reffgrid/core"
	"github.com/stretchr/testify/require"
)

func TestEditor_AddValidation(t *testing.T) {
	t.Parallel()
	e := pathABC(t).Edit()

	require.ErrorIs(t, e.AddTerminal(core.Terminal{}), core.ErrEmptyID)
	require.ErrorIs(t, e.AddTerminal(core.Terminal{ID: TermA}), core.ErrDuplicateID)
	require.ErrorIs(t, e.AddTerminal(core.Terminal{ID: LineAB}), core.ErrDuplicateID)

	cases := []struct {
		name string
		c    core.Connector
		want error
	}{
		{"empty id", core.Connector{Ends: [2]string{TermA, TermB}, Conductance: Unit}, core.ErrEmptyID},
		{"empty end", core.Connector{ID: "L_X", Ends: [2]string{TermA, ""}, Conductance: Unit}, core.ErrEmptyID},
		{"duplicate", core.Connector{ID: LineAB, Ends: [2]string{TermA, TermC}, Conductance: Unit}, core.ErrDuplicateID},
		{"self link", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermA}, Conductance: Unit}, core.ErrSelfLink},
		{"zero g", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermC}}, core.ErrBadConductance},
		{"negative g", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermC}, Conductance: -1}, core.ErrBadConductance},
		{"nan g", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermC}, Conductance: math.NaN()}, core.ErrBadConductance},
		{"inf g", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermC}, Conductance: math.Inf(1)}, core.ErrBadConductance},
		{"missing end", core.Connector{ID: "L_X", Ends: [2]string{TermA, TermD}, Conductance: Unit}, core.ErrNotFound},
		{"connector end", core.Connector{ID: "L_X", Ends: [2]string{TermA, LineBC}, Conductance: Unit}, core.ErrNotFound},
	}
	for _, tc := range cases {
		require.ErrorIs(t, e.AddConnector(tc.c), tc.want, tc.name)
	}
}

func TestEditor_RemoveUnknownIsError(t *testing.T) {
	t.Parallel()
	e := pathABC(t).Edit()

	require.ErrorIs(t, e.Remove(core.KindTerminal, TermD), core.ErrNotFound)
	require.ErrorIs(t, e.Remove(core.KindConnector, TermA), core.ErrNotFound, "kind must match")
	require.ErrorIs(t, e.Remove(core.KindTerminal, ""), core.ErrEmptyID)
	require.ErrorIs(t, e.Remove(core.NodeKind(9), TermA), core.ErrUnknownKind)

	// Removing twice is not idempotent.
	require.NoError(t, e.Remove(core.KindConnector, LineAB))
	require.ErrorIs(t, e.Remove(core.KindConnector, LineAB), core.ErrNotFound)
}

func TestEditor_RemoveTerminalLeavesResidualConnectors(t *testing.T) {
	t.Parallel()
	topo, err := pathABC(t).Without(core.KindTerminal, TermB)
	require.NoError(t, err)

	require.False(t, topo.Has(core.KindTerminal, TermB))
	require.True(t, topo.Has(core.KindConnector, LineAB))
	require.True(t, topo.Has(core.KindConnector, LineBC))

	d, err := topo.Degree(LineAB)
	require.NoError(t, err)
	require.Equal(t, 1, d)

	nbs, err := topo.Neighbors(LineBC)
	require.NoError(t, err)
	require.Equal(t, []string{TermC}, nbs)

	// The construction-time endpoints are still reported.
	c, err := topo.Connector(LineAB)
	require.NoError(t, err)
	require.Equal(t, [2]string{TermA, TermB}, c.Ends)
}

func TestEditor_RemoveAllConnectorsIsolatesTerminal(t *testing.T) {
	t.Parallel()
	e := pathABC(t).Edit()
	require.NoError(t, e.Remove(core.KindConnector, LineAB))
	topo := e.Topology()

	require.True(t, topo.Has(core.KindTerminal, TermA))
	d, err := topo.Degree(TermA)
	require.NoError(t, err)
	require.Zero(t, d)
	require.Equal(t, 1, topo.Stats().IsolatedTerminals)
}

func TestEditor_CopyOnWrite(t *testing.T) {
	t.Parallel()
	base := pathABC(t)

	e := base.Edit()
	require.NoError(t, e.Remove(core.KindConnector, LineBC))
	first := e.Topology()

	// Further edits must not leak into the published snapshot.
	require.NoError(t, e.Remove(core.KindTerminal, TermA))
	second := e.Topology()

	require.Equal(t, 2, base.ConnectorCount())
	require.Equal(t, 4, base.EdgeCount())

	require.Equal(t, 1, first.ConnectorCount())
	require.True(t, first.Has(core.KindTerminal, TermA))
	require.Equal(t, 2, first.EdgeCount())

	require.False(t, second.Has(core.KindTerminal, TermA))
	require.Equal(t, 1, second.EdgeCount())

	// Publishing twice without edits returns the same snapshot.
	require.Same(t, second, e.Topology())
}

func TestEditor_Apply(t *testing.T) {
	t.Parallel()
	e := pathABC(t).Edit()
	err := e.Apply(
		core.Removal{Kind: core.KindConnector, ID: LineAB},
		core.Removal{Kind: core.KindTerminal, ID: TermD},
		core.Removal{Kind: core.KindTerminal, ID: TermC},
	)
	require.ErrorIs(t, err, core.ErrNotFound)

	topo := e.Topology()
	require.False(t, topo.Has(core.KindConnector, LineAB), "removals before the failure stay applied")
	require.True(t, topo.Has(core.KindTerminal, TermC), "removals after the failure are skipped")
}

func TestEditor_RemoveThenRebuildMatches(t *testing.T) {
	t.Parallel()
	edited, err := triangle(t).Without(core.KindConnector, LineCA)
	require.NoError(t, err)
	rebuilt := pathABC(t)

	require.Equal(t, rebuilt.Terminals(), edited.Terminals())
	require.Equal(t, rebuilt.Connectors(), edited.Connectors())
	for _, id := range append(rebuilt.Terminals(), rebuilt.Connectors()...) {
		want, err := rebuilt.Incidences(id)
		require.NoError(t, err)
		got, err := edited.Incidences(id)
		require.NoError(t, err)
		require.Equal(t, want, got, id)
	}
}
