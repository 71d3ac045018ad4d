package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTarget   = "gaussian"
	DefaultSamples  = 1000
	DefaultStepSize = 0.1
	DefaultNumSteps = 20
	DefaultAddr     = ":8080"
)

type Config struct {
	Target   string       `yaml:"target"`
	Samples  int          `yaml:"samples"`
	StepSize float64      `yaml:"step_size"`
	NumSteps int          `yaml:"num_steps"`
	Seed     int64        `yaml:"seed"`
	Start    StartConfig  `yaml:"start"`
	Server   ServerConfig `yaml:"server"`
}

type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Target:   DefaultTarget,
		Samples:  DefaultSamples,
		StepSize: DefaultStepSize,
		NumSteps: DefaultNumSteps,
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
