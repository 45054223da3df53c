package builder_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reffgrid/builder"
	"github.com/katalvlaran/reffgrid/core"
)

func triangleSpec() builder.Spec {
	return builder.Spec{
		Terminals: []builder.TerminalSpec{
			{ID: "A", X: 0, Y: 0, Metadata: map[string]string{"voltage": "220"}},
			{ID: "B", X: 2, Y: 0},
			{ID: "C", X: 0, Y: 4},
		},
		Connectors: []builder.ConnectorSpec{
			{ID: "AB", A: "A", B: "B", Conductance: 4},
			{ID: "BC", A: "B", B: "C", Length: 0.25},
			{ID: "CA", A: "C", B: "A"},
		},
	}
}

func TestFromSpec_ConductanceAndPositions(t *testing.T) {
	t.Parallel()
	topo, err := builder.BuildTopology(nil, builder.FromSpec(triangleSpec()))
	require.NoError(t, err)
	require.Equal(t, 3, topo.TerminalCount())
	require.Equal(t, 3, topo.ConnectorCount())
	require.Equal(t, 6, topo.EdgeCount())

	// Explicit conductance 4 → ±2.
	s, ok := topo.Sign("A", "AB")
	require.True(t, ok)
	require.Equal(t, 2.0, s)
	s, _ = topo.Sign("B", "AB")
	require.Equal(t, -2.0, s)

	// Length 0.25 → conductance 4 → ±2.
	s, _ = topo.Sign("B", "BC")
	require.InDelta(t, 2.0, s, 1e-12)

	// Neither given → unit.
	s, _ = topo.Sign("C", "CA")
	require.Equal(t, 1.0, s)

	ab, err := topo.Connector("AB")
	require.NoError(t, err)
	require.Equal(t, core.Position{X: 1, Y: 0}, ab.Pos)
	ca, err := topo.Connector("CA")
	require.NoError(t, err)
	require.Equal(t, core.Position{X: 0, Y: 2}, ca.Pos)

	a, err := topo.Terminal("A")
	require.NoError(t, err)
	require.Equal(t, "220", a.Metadata["voltage"])
}

func TestFromSpec_UnitConductance(t *testing.T) {
	t.Parallel()
	topo, err := builder.BuildTopology(
		[]builder.BuilderOption{builder.WithUnitConductance()},
		builder.FromSpec(triangleSpec()),
	)
	require.NoError(t, err)
	for _, id := range topo.Connectors() {
		incs, err := topo.Incidences(id)
		require.NoError(t, err)
		for _, inc := range incs {
			require.Equal(t, 1.0, math.Abs(inc.Sign), "%s-%s", id, inc.Neighbor)
		}
	}
}

func TestValidateSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(s *builder.Spec)
		want   string
	}{
		{"missing terminal id", func(s *builder.Spec) { s.Terminals[1].ID = "" }, "required"},
		{"duplicate terminal", func(s *builder.Spec) { s.Terminals[2].ID = "A" }, "duplicate"},
		{"duplicate connector", func(s *builder.Spec) { s.Connectors[1].ID = "AB" }, "duplicate"},
		{"missing end", func(s *builder.Spec) { s.Connectors[0].B = "" }, "required"},
		{"self link", func(s *builder.Spec) { s.Connectors[0].B = "A" }, "must differ"},
		{"negative conductance", func(s *builder.Spec) { s.Connectors[0].Conductance = -1 }, "at least"},
		{"negative length", func(s *builder.Spec) { s.Connectors[1].Length = -3 }, "at least"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := triangleSpec()
			tc.mutate(&s)
			err := builder.ValidateSpec(s)
			require.ErrorIs(t, err, builder.ErrInvalidSpec)
			require.Contains(t, err.Error(), tc.want)

			_, err = builder.BuildTopology(nil, builder.FromSpec(s))
			require.ErrorIs(t, err, builder.ErrInvalidSpec)
		})
	}

	require.NoError(t, builder.ValidateSpec(triangleSpec()))
	require.NoError(t, builder.ValidateSpec(builder.Spec{}))
}

func TestFromSpec_UnknownEndpoint(t *testing.T) {
	t.Parallel()
	s := triangleSpec()
	s.Connectors = append(s.Connectors, builder.ConnectorSpec{ID: "AX", A: "A", B: "X"})

	_, err := builder.BuildTopology(nil, builder.FromSpec(s))
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDecodeSpec(t *testing.T) {
	t.Parallel()
	doc := `
terminals:
  - id: A
    x: 0
    y: 0
    metadata:
      name: north
  - id: B
    x: 1
    y: 0
connectors:
  - id: AB
    a: A
    b: B
    length: 0.5
`
	s, err := builder.DecodeSpec(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, s.Terminals, 2)
	require.Len(t, s.Connectors, 1)
	require.Equal(t, "north", s.Terminals[0].Metadata["name"])
	require.Equal(t, 0.5, s.Connectors[0].Length)

	topo, err := builder.BuildTopology(nil, builder.FromSpec(s))
	require.NoError(t, err)
	sign, _ := topo.Sign("A", "AB")
	require.InDelta(t, math.Sqrt2, sign, 1e-12)
}

func TestDecodeSpec_JSONAndErrors(t *testing.T) {
	t.Parallel()

	s, err := builder.DecodeSpec(strings.NewReader(
		`{"terminals":[{"id":"A"},{"id":"B"}],"connectors":[{"id":"L","a":"A","b":"B","conductance":2}]}`))
	require.NoError(t, err)
	require.Equal(t, 2.0, s.Connectors[0].Conductance)

	_, err = builder.DecodeSpec(strings.NewReader(""))
	require.ErrorIs(t, err, builder.ErrDecode)

	_, err = builder.DecodeSpec(strings.NewReader("terminals: [ {id: A, colour: red} ]"))
	require.ErrorIs(t, err, builder.ErrDecode)

	_, err = builder.DecodeSpec(strings.NewReader("terminals: {"))
	require.ErrorIs(t, err, builder.ErrDecode)
}
