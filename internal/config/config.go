// Package config loads and validates the rampd daemon configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DaemonConfig is the resolved rampd configuration.
type DaemonConfig struct {
	Addr               string
	CorsOrigins        []string
	RegistryExtensions string
}

// fileConfig is the on-disk shape; absence of a key keeps the default.
type fileConfig struct {
	Addr               string   `toml:"addr"`
	CorsOrigins        []string `toml:"cors_origins"`
	RegistryExtensions string   `toml:"registry_extensions"`
}

func DefaultDaemonConfig() DaemonConfig {
	return DaemonConfig{
		Addr: ":8420",
	}
}

func LoadDaemonConfig(path string) (DaemonConfig, error) {
	cfg := DefaultDaemonConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DaemonConfig{}, fmt.Errorf("load rampd config (%s): %w", path, err)
	}

	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("registry_extensions") {
		cfg.RegistryExtensions = strings.TrimSpace(raw.RegistryExtensions)
	}

	if err := ValidateDaemonConfig(cfg); err != nil {
		return DaemonConfig{}, err
	}
	return cfg, nil
}

func ValidateDaemonConfig(cfg DaemonConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("rampd config missing addr")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}
