// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// impl_grid.go: Grid(rows, cols): the synthetic rows×cols test network.
//
// Canonical model:
//   • Terminal "N_r_c" at (c, −r) for every cell, row-major.
//   • Horizontal connector "L_h_r_c" at (c+0.5, −r) joining N_r_c (+) and N_r_c+1 (−).
//   • Vertical connector   "L_v_r_c" at (c, −(r+0.5)) joining N_r+1_c (+) and N_r_c (−).
//   • Every connector has conductance cfg.linkConductance().
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewTerminals).
//
// Complexity:
//   • Time: O(rows·cols) terminals + O(2·rows·cols) connectors.
//
// Determinism:
//   • Terminals row-major; for each (r,c) emit horizontal then vertical connector.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reffgrid/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(e *core.Editor, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewTerminals)
		}

		node := func(r, c int) string { return fmt.Sprintf("%s_%d_%d", cfg.terminalPrefix, r, c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				n := core.Terminal{ID: node(r, c), Pos: core.Position{X: float64(c), Y: -float64(r)}}
				if err := e.AddTerminal(n); err != nil {
					return fmt.Errorf("%s: AddTerminal(%s): %w", methodGrid, n.ID, err)
				}
			}
		}

		g := cfg.linkConductance()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					l := core.Connector{
						ID:          fmt.Sprintf("%s_h_%d_%d", cfg.connectorPrefix, r, c),
						Ends:        [2]string{node(r, c), node(r, c+1)},
						Conductance: g,
						Pos:         core.Position{X: float64(c) + 0.5, Y: -float64(r)},
					}
					if err := e.AddConnector(l); err != nil {
						return fmt.Errorf("%s: AddConnector(%s): %w", methodGrid, l.ID, err)
					}
				}
				if r+1 < rows {
					l := core.Connector{
						ID:          fmt.Sprintf("%s_v_%d_%d", cfg.connectorPrefix, r, c),
						Ends:        [2]string{node(r+1, c), node(r, c)},
						Conductance: g,
						Pos:         core.Position{X: float64(c), Y: -(float64(r) + 0.5)},
					}
					if err := e.AddConnector(l); err != nil {
						return fmt.Errorf("%s: AddConnector(%s): %w", methodGrid, l.ID, err)
					}
				}
			}
		}

		return nil
	}
}
