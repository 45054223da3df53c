// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// spec.go: normalized topology ingestion.
//
// Contract:
//   • A Spec is the caller-normalized list of terminals {id, x, y, metadata}
//     and connectors {id, a, b, conductance | length}. The builder never reads
//     an external power-system dataset itself.
//   • Conductance resolution per connector: WithUnitConductance → 1;
//     conductance > 0 → conductance; length > 0 → 1/length; otherwise 1.
//   • Connector position is the midpoint of its two terminals.
//   • Structural checks run through go-playground/validator before any node is
//     emitted, so an invalid Spec never produces a partial topology.

package builder

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reffgrid/core"
)

const methodFromSpec = "FromSpec"

// validate is the package validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Spec is a normalized description of a network.
type Spec struct {
	Terminals  []TerminalSpec  `yaml:"terminals" json:"terminals" validate:"unique=ID,dive"`
	Connectors []ConnectorSpec `yaml:"connectors" json:"connectors" validate:"unique=ID,dive"`
}

// TerminalSpec describes one bus.
type TerminalSpec struct {
	ID       string            `yaml:"id" json:"id" validate:"required"`
	X        float64           `yaml:"x" json:"x"`
	Y        float64           `yaml:"y" json:"y"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// ConnectorSpec describes one line between terminals A (positive incidence)
// and B (negative incidence).
type ConnectorSpec struct {
	ID          string  `yaml:"id" json:"id" validate:"required"`
	A           string  `yaml:"a" json:"a" validate:"required,nefield=B"`
	B           string  `yaml:"b" json:"b" validate:"required"`
	Conductance float64 `yaml:"conductance,omitempty" json:"conductance,omitempty" validate:"gte=0"`
	Length      float64 `yaml:"length,omitempty" json:"length,omitempty" validate:"gte=0"`
}

// ValidateSpec runs the structural checks of a Spec.
//
// Errors:
//   - ErrInvalidSpec wrapping the first failing field.
func ValidateSpec(s Spec) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, formatValidationError(err))
	}

	return nil
}

// DecodeSpec reads a YAML (or JSON, which is valid YAML) Spec document.
// Unknown keys are rejected.
//
// Errors:
//   - ErrDecode for empty or malformed documents.
func DecodeSpec(r io.Reader) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Spec{}, fmt.Errorf("DecodeSpec: empty document: %w", ErrDecode)
		}
		return Spec{}, fmt.Errorf("DecodeSpec: %w: %w", ErrDecode, err)
	}

	return s, nil
}

// FromSpec returns a Constructor emitting every terminal, then every connector,
// in Spec order.
//
// Errors:
//   - ErrInvalidSpec for structural problems.
//   - core errors (ErrDuplicateID, ErrNotFound, ErrBadConductance, ...) wrapped with context.
func FromSpec(s Spec) Constructor {
	return func(e *core.Editor, cfg builderConfig) error {
		if err := ValidateSpec(s); err != nil {
			return fmt.Errorf("%s: %w", methodFromSpec, err)
		}

		for _, ts := range s.Terminals {
			n := core.Terminal{ID: ts.ID, Pos: core.Position{X: ts.X, Y: ts.Y}, Metadata: ts.Metadata}
			if err := e.AddTerminal(n); err != nil {
				return fmt.Errorf("%s: AddTerminal(%s): %w", methodFromSpec, ts.ID, err)
			}
		}

		for _, cs := range s.Connectors {
			l := core.Connector{
				ID:          cs.ID,
				Ends:        [2]string{cs.A, cs.B},
				Conductance: cfg.specConductance(cs),
				Pos:         midpoint(e, cs.A, cs.B),
			}
			if err := e.AddConnector(l); err != nil {
				return fmt.Errorf("%s: AddConnector(%s): %w", methodFromSpec, cs.ID, err)
			}
		}

		return nil
	}
}

func (c builderConfig) specConductance(cs ConnectorSpec) float64 {
	switch {
	case c.unit:
		return 1
	case cs.Conductance > 0:
		return cs.Conductance
	case cs.Length > 0:
		return 1 / cs.Length
	default:
		return 1
	}
}

// midpoint averages the positions of a and b; a missing end yields the zero
// position and is reported by AddConnector right after.
func midpoint(e *core.Editor, a, b string) core.Position {
	na, errA := e.Terminal(a)
	nb, errB := e.Terminal(b)
	if errA != nil || errB != nil {
		return core.Position{}
	}

	return core.Position{X: (na.Pos.X + nb.Pos.X) / 2, Y: (na.Pos.Y + nb.Pos.Y) / 2}
}

// formatValidationError reduces validator output to the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", fe.Namespace())
	case "unique":
		return fmt.Errorf("%s: duplicate %s", fe.Namespace(), fe.Param())
	case "nefield":
		return fmt.Errorf("%s: must differ from %s", fe.Namespace(), fe.Param())
	case "gte":
		return fmt.Errorf("%s: must be at least %s", fe.Namespace(), fe.Param())
	default:
		return fmt.Errorf("%s: validation failed (%s)", fe.Namespace(), fe.Tag())
	}
}
