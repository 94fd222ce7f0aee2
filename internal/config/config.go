// Package config loads CLI defaults for the equity solver front-ends from
// an HCL file, following the teacher's internal/server/config.go pattern:
// a typed struct decoded with gohcl, falling back to hardcoded defaults
// when the file is absent or a field is left unset.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the CLI's tunable defaults.
type Config struct {
	Iterations uint32 `hcl:"iterations,optional"`
	Workers    int    `hcl:"workers,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// Default returns the hardcoded defaults used when no file is present.
func Default() *Config {
	return &Config{
		Iterations: 10000,
		Workers:    0, // decoded but not passed to the solver; the Monte Carlo engine picks its own worker count
		LogLevel:   "info",
	}
}

// Load reads filename as HCL and decodes it into a Config, applying
// Default's values for any field left unset. A missing file is not an
// error: Default is returned unchanged.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if cfg.Iterations == 0 {
		cfg.Iterations = defaults.Iterations
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return cfg, nil
}
