// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// impl_path.go: Path(n): n terminals in a line.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewTerminals).
//   - Terminals "N_i" at (i, 0); connector "L_i" at (i+0.5, 0) joins N_i (+) and N_i+1 (−).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reffgrid/core"
)

const (
	methodPath       = "Path"
	minPathTerminals = 2
)

// Path returns a Constructor that builds a simple path of n terminals.
func Path(n int) Constructor {
	return func(e *core.Editor, cfg builderConfig) error {
		if n < minPathTerminals {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathTerminals, ErrTooFewTerminals)
		}

		node := func(i int) string { return fmt.Sprintf("%s_%d", cfg.terminalPrefix, i) }
		for i := 0; i < n; i++ {
			if err := e.AddTerminal(core.Terminal{ID: node(i), Pos: core.Position{X: float64(i)}}); err != nil {
				return fmt.Errorf("%s: AddTerminal(%s): %w", methodPath, node(i), err)
			}
		}

		g := cfg.linkConductance()
		for i := 0; i+1 < n; i++ {
			l := core.Connector{
				ID:          fmt.Sprintf("%s_%d", cfg.connectorPrefix, i),
				Ends:        [2]string{node(i), node(i + 1)},
				Conductance: g,
				Pos:         core.Position{X: float64(i) + 0.5},
			}
			if err := e.AddConnector(l); err != nil {
				return fmt.Errorf("%s: AddConnector(%s): %w", methodPath, l.ID, err)
			}
		}

		return nil
	}
}
