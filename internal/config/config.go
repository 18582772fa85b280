// Package config loads brnflip's optional configuration file.
//
// The file is found through the --config flag or the BRNFLIP_CONFIG
// environment variable. YAML files (.yaml, .yml) and JSON files with
// comments (.json, .jsonc) are accepted. Command-line flags override
// every value read here.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-brnflip/brain"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// EnvVar names the environment variable consulted by Load.
const EnvVar = "BRNFLIP_CONFIG"

// Config holds the tunables of a conversion run.
type Config struct {
	// Target is the desired byte order, in any form brain.ParseTarget
	// accepts.
	Target string `yaml:"target" json:"target"`

	// MaxSize caps the size of an accepted brain file in bytes.
	// Zero or negative disables the cap.
	MaxSize int `yaml:"max_size" json:"max_size"`

	// MaxDepth caps tree nesting. Zero or negative disables the cap.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Backup keeps a copy of the output file at <output>.bak before it
	// is overwritten.
	Backup bool `yaml:"backup" json:"backup"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Target:   "this",
		MaxSize:  format.DefaultMaxSize,
		MaxDepth: format.DefaultMaxDepth,
		LogLevel: "info",
	}
}

// Load loads the file named by BRNFLIP_CONFIG, or returns Default when
// the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, layered over Default. Fields
// absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var levels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := brain.ParseTarget(c.Target, brain.NativeOrder()); err != nil {
		errs = append(errs, fmt.Errorf("target: %w", err))
	}
	if !contains(levels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", levels))
	}
	if c.MaxSize > 0 && c.MaxSize < format.MinSize {
		errs = append(errs, fmt.Errorf("max_size must be at least %d", format.MinSize))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
