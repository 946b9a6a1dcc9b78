package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the simulation tunables. Everything here has a sensible
// default so the simulator runs without any config file present.
type Config struct {
	// SpawnInterval is the simulated seconds between passenger spawns.
	SpawnInterval float64 `yaml:"SpawnInterval"`
	// CarSpeed is the constant car velocity in floors per simulated second.
	CarSpeed float64 `yaml:"CarSpeed"`
	// Timestep is the simulated seconds advanced per step.
	Timestep float64 `yaml:"Timestep"`
	// StepDelayMs is the wall-clock pacing between steps. Zero disables
	// pacing entirely (headless runs).
	StepDelayMs int `yaml:"StepDelayMs"`
}

func DefaultConfig() Config {
	return Config{
		SpawnInterval: 3.0,
		CarSpeed:      1.0,
		Timestep:      0.1,
		StepDelayMs:   25,
	}
}

// LoadConfig reads tunables from a YAML file. A missing file is not an
// error: the defaults are returned unchanged. A file that cannot be read or
// parsed also returns the defaults, along with the error so the caller can
// warn about it. Non-positive values fall back field by field.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
	}

	def := DefaultConfig()
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = def.SpawnInterval
	}
	if cfg.CarSpeed <= 0 {
		cfg.CarSpeed = def.CarSpeed
	}
	if cfg.Timestep <= 0 {
		cfg.Timestep = def.Timestep
	}
	if cfg.StepDelayMs < 0 {
		cfg.StepDelayMs = def.StepDelayMs
	}
	return cfg, nil
}
