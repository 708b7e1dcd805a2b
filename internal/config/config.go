// internal/config/config.go
//
// Typed view of configs/image-foundry.yaml. The cardinal rule here is
// that absence is never an error: a missing file, section, tool, or
// field quietly resolves to "disabled"/empty at every depth. All reads
// go through the nil-safe accessors below so that rule holds
// transitively.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the foundry configuration file.
type Config struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`

	Image      Image      `yaml:"image"`
	Tools      Tools      `yaml:"tools"`
	Compliance Compliance `yaml:"compliance"`
}

// Image identifies where built images are published.
type Image struct {
	Name      string `yaml:"name"`
	Tag       string `yaml:"tag"`
	Registry  string `yaml:"registry"`
	Namespace string `yaml:"namespace"`
}

// Tools holds the per-category tool toggles plus extra OS packages.
type Tools struct {
	Languages map[string]Tool `yaml:"languages"`
	Security  map[string]Tool `yaml:"security"`
	DevOps    map[string]Tool `yaml:"devops"`
	Packages  []string        `yaml:"packages"`
}

// Tool is a single installable tool toggle.
type Tool struct {
	Install bool   `yaml:"install"`
	Version string `yaml:"version"`
}

// Compliance toggles the compliance tooling layer.
type Compliance struct {
	Enabled   bool     `yaml:"enabled"`
	Standards []string `yaml:"standards"`
}

// Tool categories recognized by Lookup.
const (
	CatLanguages = "languages"
	CatSecurity  = "security"
	CatDevOps    = "devops"
)

// Lookup returns the Tool at tools.<category>.<name>. A missing
// category, nil map, or absent tool yields the zero Tool
// (Install=false, Version=""), never an error.
func (t Tools) Lookup(category, name string) Tool {
	var m map[string]Tool
	switch category {
	case CatLanguages:
		m = t.Languages
	case CatSecurity:
		m = t.Security
	case CatDevOps:
		m = t.DevOps
	}
	return m[name] // nil map lookup is fine
}

// Installed reports whether tools.<category>.<name>.install is true.
func (t Tools) Installed(category, name string) bool {
	return t.Lookup(category, name).Install
}

// VersionOr returns the configured version for the tool, or fallback
// when unset.
func (t Tools) VersionOr(category, name, fallback string) string {
	if v := t.Lookup(category, name).Version; v != "" {
		return v
	}
	return fallback
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrEmpty is Load, except a missing file resolves to the zero
// config (everything disabled) instead of an error. Parse errors are
// still reported.
func LoadOrEmpty(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}
	return Load(path)
}
