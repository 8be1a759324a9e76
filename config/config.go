package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kirides/dxcaps/logger"
)

// Config holds the tool's settings. Zero values mean "unspecified" and
// are replaced by Defaults or by command-line flags.
type Config struct {
	// View is "all" or "interesting".
	View string `json:"view" yaml:"view" toml:"view"`
	// Format is text, json, yaml or toml.
	Format string `json:"format" yaml:"format" toml:"format"`
	// Output is a file path; empty writes to stdout.
	Output string `json:"output" yaml:"output" toml:"output"`
	// WARP and Reference enable the globally probed software and
	// reference driver subtrees. Nil means enabled.
	WARP      *bool `json:"warp" yaml:"warp" toml:"warp"`
	Reference *bool `json:"reference" yaml:"reference" toml:"reference"`
	// Addr is the listen address of the HTTP viewer.
	Addr    string        `json:"addr" yaml:"addr" toml:"addr"`
	Logging logger.Config `json:"logging" yaml:"logging" toml:"logging"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		View:   "interesting",
		Format: "text",
		Addr:   "127.0.0.1:8089",
		Logging: logger.Config{
			Level:   "info",
			Console: logger.Bool(true),
		},
	}
}

// Merge fills unset fields of c from d.
func (c Config) Merge(d Config) Config {
	if c.View == "" {
		c.View = d.View
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.WARP == nil {
		c.WARP = d.WARP
	}
	if c.Reference == nil {
		c.Reference = d.Reference
	}
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Output == "" {
		c.Logging.Output = d.Logging.Output
	}
	if c.Logging.TimeFormat == "" {
		c.Logging.TimeFormat = d.Logging.TimeFormat
	}
	c.Logging.Debug = c.Logging.Debug || d.Logging.Debug
	if c.Logging.Console == nil {
		c.Logging.Console = d.Logging.Console
	}
	return c
}

// ProbeWARP reports whether the WARP subtree is wanted.
func (c Config) ProbeWARP() bool { return c.WARP == nil || *c.WARP }

// ProbeReference reports whether the reference subtree is wanted.
func (c Config) ProbeReference() bool { return c.Reference == nil || *c.Reference }

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.View) {
	case "", "all", "interesting":
	default:
		return fmt.Errorf("invalid view %q: want all or interesting", c.View)
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json", "yaml", "toml":
	default:
		return fmt.Errorf("invalid format %q: want text, json, yaml or toml", c.Format)
	}
	return nil
}
