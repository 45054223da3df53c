// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • terminalPrefix  = "N"   (grid/path terminal IDs: N_r_c, N_i)
//   • connectorPrefix = "L"   (grid/path connector IDs: L_h_r_c, L_v_r_c, L_i)
//   • conductance     = 1.0   (unit links → incidences ±1)
//   • unit            = false (Spec conductance/length honoured)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	terminalPrefix  string
	connectorPrefix string

	// conductance is used by synthetic constructors (Grid, Path).
	conductance float64

	// unit forces every connector to conductance 1, ignoring Spec values.
	unit bool
}

const (
	defaultTerminalPrefix  = "N"
	defaultConnectorPrefix = "L"
	defaultConductance     = 1.0
)

// newBuilderConfig applies options in order (last wins) over the defaults and
// resolves empty prefixes back to the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		terminalPrefix:  defaultTerminalPrefix,
		connectorPrefix: defaultConnectorPrefix,
		conductance:     defaultConductance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.terminalPrefix == "" {
		cfg.terminalPrefix = defaultTerminalPrefix
	}
	if cfg.connectorPrefix == "" {
		cfg.connectorPrefix = defaultConnectorPrefix
	}

	return cfg
}
