// Package config loads rp's optional configuration file: defaults for
// global nocase/skip-err behavior and the newline a sink uses when none is
// specified, the MCP tier ceiling, and the audit log path. cmd/rp applies
// the audit log path and the MCP tier ceiling; the defaults section is
// loaded but not applied to any pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/policy"
)

// Config holds rp's global configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	MCP      MCPConfig      `yaml:"mcp"`
	Audit    AuditConfig    `yaml:"audit"`
}

// DefaultsConfig supplies process-wide defaults a command line can
// override but never have silently overridden in return.
type DefaultsConfig struct {
	Nocase  bool   `yaml:"nocase"`
	SkipErr bool   `yaml:"skip_err"`
	Newline string `yaml:"newline"` // "lf" or "crlf"
}

// MCPConfig controls the MCP server mode.
type MCPConfig struct {
	TierCeiling string `yaml:"tier_ceiling"` // "read" or "write"
}

// AuditConfig controls audit log settings.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns rp's configuration before any file is read.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Defaults: DefaultsConfig{Newline: "lf"},
		MCP:      MCPConfig{TierCeiling: "read"},
		Audit:    AuditConfig{Path: filepath.Join(home, ".local", "share", "rp", "audit.jsonl")},
	}
}

// Load reads the config from RP_CONFIG, or the standard location
// (~/.config/rp/config.yaml) if unset. A missing file is not an error —
// it returns the defaults.
func Load() (*Config, error) {
	if p := os.Getenv("RP_CONFIG"); p != "" {
		return LoadFrom(p)
	}
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Audit.Path) > 0 && cfg.Audit.Path[0] == '~' {
		home, _ := os.UserHomeDir()
		cfg.Audit.Path = filepath.Join(home, cfg.Audit.Path[1:])
	}

	return cfg, nil
}

// ConfigPath returns the standard config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rp", "config.yaml")
}

// NewlineDefault resolves the configured default newline to a
// pipeline.Newline, falling back to LF for an unrecognized value.
func (c *Config) NewlineDefault() pipeline.Newline {
	if c.Defaults.Newline == "crlf" {
		return pipeline.NewlineCRLF
	}
	return pipeline.NewlineLF
}

// TierCeiling resolves the configured MCP tier ceiling, falling back to
// the safe default (read-only) for an unrecognized value.
func (c *Config) TierCeiling() policy.Tier {
	if c.MCP.TierCeiling == "write" {
		return policy.TierWrite
	}
	return policy.TierRead
}
