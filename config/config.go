// Package config provides configuration loading and access for the
// swarm grammar simulation and OIDE population driver (the ambient stack
// spec.md's distillation omits; see the expanded spec's "Configuration"
// section). Grounded on pthm-soup/config/config.go's embed+YAML pattern.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every simulation-wide knob that is not itself part of a
// genome: chunk spacing, terrain relaxation constants, default RNG seed,
// default tick budget, the OIDE loop's scale factor and population size,
// and telemetry/output toggles.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Run       RunConfig       `yaml:"run"`
	OIDE      OIDEConfig      `yaml:"oide"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WorldConfig holds the spatial index and terrain relaxation constants
// (spec §4.2, §4.4).
type WorldConfig struct {
	Spacing             float32 `yaml:"spacing"`
	BuoyInfluenceRadius float32 `yaml:"buoy_influence_radius"`
}

// RunConfig holds the default seed and tick budget a simulation driver
// starts with absent an explicit override (spec §5 "RNGs are passed in
// by the caller").
type RunConfig struct {
	Seed  int64 `yaml:"seed"`
	Ticks int   `yaml:"ticks"`
}

// OIDEConfig holds the population loop's run parameters (spec §4.6).
type OIDEConfig struct {
	F              float32 `yaml:"f"`
	PopulationSize int     `yaml:"population_size"`
	Generations    int     `yaml:"generations"`
	ReboundOnLoad  bool    `yaml:"rebound_on_load"`
}

// TelemetryConfig toggles and configures CSV/stat export.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	OutputDir   string  `yaml:"output_dir"`
	StatsWindow float64 `yaml:"stats_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

// WriteYAML saves c to path as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
