package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Application Application `yaml:"application"`
	GUI         GUI         `yaml:"gui"`
}

type Application struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`
}

type GUI struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Theme       string `yaml:"theme"`
	Interactive bool   `yaml:"interactive"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "Hello World",
			Version:  "1.0.0",
			LogLevel: "info",
		},
		GUI: GUI{
			Title:       "Hello World",
			Width:       300,
			Height:      200,
			Theme:       "light",
			Interactive: true,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// yields the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err := validate(data); err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	}

	if applyEnvOverrides(cfg) {
		// overridden values must satisfy the same schema as the file
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal config: %w", err)
		}
		if err := validate(data); err != nil {
			return nil, fmt.Errorf("environment override: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
