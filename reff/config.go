// SPDX-License-Identifier: MIT
// Package: reffgrid/reff
//
// config.go: viper-backed run configuration.
//
// Keys and defaults:
//   run.steps                    0      (0 = lanczos.DefaultSteps)
//   run.inject, run.extract      ""     (seed terminals)
//   run.inject_weight            1
//   run.extract_weight           -1
//   engine.workers               1
//   engine.parallel_threshold    lanczos.DefaultParallelThreshold
//   engine.breakdown_tolerance   lanczos.DefaultBreakdownTolerance
//   diagnostics.enabled          false
//   diagnostics.series_bound     true
//   logging.level                info

package reff

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/reffgrid/lanczos"
)

// ErrInvalidConfig indicates that configuration values fail validation.
var ErrInvalidConfig = errors.New("reff: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config manages estimator configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Run parameters
	v.SetDefault("run.steps", 0)
	v.SetDefault("run.inject", "")
	v.SetDefault("run.extract", "")
	v.SetDefault("run.inject_weight", 1.0)
	v.SetDefault("run.extract_weight", -1.0)

	// Engine parameters
	v.SetDefault("engine.workers", 1)
	v.SetDefault("engine.parallel_threshold", lanczos.DefaultParallelThreshold)
	v.SetDefault("engine.breakdown_tolerance", lanczos.DefaultBreakdownTolerance)

	v.SetDefault("diagnostics.enabled", false)
	v.SetDefault("diagnostics.series_bound", true)
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadConfigFile merges a configuration file over the defaults. The format
// follows the file extension (yaml, json, toml, ...).
func (c *Config) LoadConfigFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Steps, Inject, Extract, InjectWeight and ExtractWeight read the run.* keys.
func (c *Config) Steps() int             { return c.v.GetInt("run.steps") }
func (c *Config) Inject() string         { return c.v.GetString("run.inject") }
func (c *Config) Extract() string        { return c.v.GetString("run.extract") }
func (c *Config) InjectWeight() float64  { return c.v.GetFloat64("run.inject_weight") }
func (c *Config) ExtractWeight() float64 { return c.v.GetFloat64("run.extract_weight") }

// Workers, ParallelThreshold and BreakdownTolerance read the engine.* keys.
func (c *Config) Workers() int                { return c.v.GetInt("engine.workers") }
func (c *Config) ParallelThreshold() int      { return c.v.GetInt("engine.parallel_threshold") }
func (c *Config) BreakdownTolerance() float64 { return c.v.GetFloat64("engine.breakdown_tolerance") }

// Diagnostics, SeriesBound and LogLevel read the diagnostics.* and logging.* keys.
func (c *Config) Diagnostics() bool { return c.v.GetBool("diagnostics.enabled") }
func (c *Config) SeriesBound() bool { return c.v.GetBool("diagnostics.series_bound") }
func (c *Config) LogLevel() string  { return c.v.GetString("logging.level") }

// Set overrides a single key, taking precedence over defaults and the file.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Settings is the validated, typed view of a Config.
type Settings struct {
	Steps              int     `validate:"gte=0"`
	Workers            int     `validate:"gte=0"`
	ParallelThreshold  int     `validate:"gte=1"`
	BreakdownTolerance float64 `validate:"gte=0"`
	Inject             string  `validate:"omitempty,nefield=Extract"`

	Extract       string
	InjectWeight  float64
	ExtractWeight float64
	Diagnostics   bool
	SeriesBound   bool
	LogLevel      string
}

// Settings reads every key and validates the result.
//
// Errors:
//   - ErrInvalidConfig naming the first offending field.
func (c *Config) Settings() (Settings, error) {
	s := Settings{
		Steps:              c.Steps(),
		Inject:             c.Inject(),
		Extract:            c.Extract(),
		InjectWeight:       c.InjectWeight(),
		ExtractWeight:      c.ExtractWeight(),
		Workers:            c.Workers(),
		ParallelThreshold:  c.ParallelThreshold(),
		BreakdownTolerance: c.BreakdownTolerance(),
		Diagnostics:        c.Diagnostics(),
		SeriesBound:        c.SeriesBound(),
		LogLevel:           c.LogLevel(),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks the field constraints of s.
//
// Errors:
//   - ErrInvalidConfig naming the first offending field.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q %s", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "reff").Logger()
}
