// SPDX-License-Identifier: MIT

package reff_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reffgrid/lanczos"
	"github.com/katalvlaran/reffgrid/reff"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()
	s, err := reff.NewConfig().Settings()
	require.NoError(t, err)
	require.Equal(t, reff.Settings{
		Steps:              0,
		Workers:            1,
		ParallelThreshold:  lanczos.DefaultParallelThreshold,
		BreakdownTolerance: lanczos.DefaultBreakdownTolerance,
		InjectWeight:       1,
		ExtractWeight:      -1,
		SeriesBound:        true,
		LogLevel:           "info",
	}, s)
}

func TestConfig_LoadConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "reff.yaml")
	doc := `
run:
  steps: 12
  inject: N_0_0
  extract: N_2_2
  inject_weight: 2
engine:
  workers: 4
  breakdown_tolerance: 0
diagnostics:
  enabled: true
  series_bound: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c := reff.NewConfig()
	require.NoError(t, c.LoadConfigFile(path))
	s, err := c.Settings()
	require.NoError(t, err)

	require.Equal(t, 12, s.Steps)
	require.Equal(t, "N_0_0", s.Inject)
	require.Equal(t, "N_2_2", s.Extract)
	require.Equal(t, 2.0, s.InjectWeight)
	require.Equal(t, -1.0, s.ExtractWeight, "unset keys keep their default")
	require.Equal(t, 4, s.Workers)
	require.Equal(t, lanczos.DefaultParallelThreshold, s.ParallelThreshold)
	require.Zero(t, s.BreakdownTolerance)
	require.True(t, s.Diagnostics)
	require.False(t, s.SeriesBound)
	require.Equal(t, zerolog.DebugLevel, c.CreateLogger().GetLevel())
}

func TestConfig_LoadConfigFile_Missing(t *testing.T) {
	t.Parallel()
	err := reff.NewConfig().LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"negative steps", "run.steps", -1},
		{"negative workers", "engine.workers", -2},
		{"zero threshold", "engine.parallel_threshold", 0},
		{"negative tolerance", "engine.breakdown_tolerance", -1e-3},
		{"coincident terminals", "run.extract", "N_0"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := reff.NewConfig()
			c.Set("run.inject", "N_0")
			c.Set(tc.key, tc.value)
			_, err := c.Settings()
			require.ErrorIs(t, err, reff.ErrInvalidConfig)
		})
	}
}

func TestConfig_CreateLogger_LevelFallback(t *testing.T) {
	t.Parallel()
	c := reff.NewConfig()
	c.Set("logging.level", "loud")
	require.Equal(t, zerolog.InfoLevel, c.CreateLogger().GetLevel())

	c.Set("logging.level", "warn")
	require.Equal(t, zerolog.WarnLevel, c.CreateLogger().GetLevel())
}
