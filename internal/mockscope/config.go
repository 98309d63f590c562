// Package mockscope emulates the SCPI control socket of an SDS2000
// series oscilloscope for integration tests and bench-free
// development.
package mockscope

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config is the mock server configuration.
type Config struct {
	Listen   ListenConfig   `yaml:"listen"`
	Channels int            `yaml:"channels"`
	Identity IdentityConfig `yaml:"identity"`
	Log      LogConfig      `yaml:"log"`
}

// ListenConfig holds the TCP listener settings.
type ListenConfig struct {
	Port int `yaml:"port"`
}

// IdentityConfig holds the fields of the *IDN? response.
type IdentityConfig struct {
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
	Serial       string `yaml:"serial"`
	Firmware     string `yaml:"firmware"`
}

// LogConfig holds the rotating server log settings. An empty file
// name logs to stderr.
type LogConfig struct {
	File string `yaml:"file"`
}

// Load builds the configuration from defaults, an optional YAML file
// named by MOCKSCOPE_CONFIG, and environment overrides, then
// validates the result.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("MOCKSCOPE_CONFIG"); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("mockscope: load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("mockscope: configuration validation failed: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration of a stock SDS2354X HD on
// the standard SCPI port.
func DefaultConfig() *Config {
	return &Config{
		Listen:   ListenConfig{Port: 5025},
		Channels: 4,
		Identity: IdentityConfig{
			Manufacturer: "Siglent Technologies",
			Model:        "SDS2354X HD",
			Serial:       "SDS2MOCK000001",
			Firmware:     "3.8.12.1.1.3.8",
		},
	}
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("MOCKSCOPE_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.Listen.Port = port
		}
	}
	if val := os.Getenv("MOCKSCOPE_CHANNELS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Channels = n
		}
	}
	if val := os.Getenv("MOCKSCOPE_SERIAL"); val != "" {
		cfg.Identity.Serial = val
	}
	if val := os.Getenv("MOCKSCOPE_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Listen.Port < 0 || cfg.Listen.Port > 65535 {
		return fmt.Errorf("invalid listen port %d", cfg.Listen.Port)
	}
	if cfg.Channels < 1 || cfg.Channels > 8 {
		return fmt.Errorf("channel count %d is outside supported range [1, 8]", cfg.Channels)
	}
	if cfg.Identity.Manufacturer == "" || cfg.Identity.Model == "" {
		return fmt.Errorf("identity manufacturer and model must be set")
	}
	return nil
}
