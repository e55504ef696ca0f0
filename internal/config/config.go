// Package config loads the optional mgsetup.toml overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/aurelab/mgsetup/internal/manifest"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "mgsetup.toml"

// DefaultVenvDir is the virtual environment directory created when no
// override is configured.
const DefaultVenvDir = "venv"

// PythonConfig selects the interpreter used to create the environment.
type PythonConfig struct {
	// Binary overrides the python3/python lookup, e.g. "python3.11".
	Binary string `toml:"binary"`
}

// VenvConfig controls where the virtual environment is created.
type VenvConfig struct {
	Dir string `toml:"dir"`
}

// ManifestConfig controls the generated requirements file.
type ManifestConfig struct {
	File string `toml:"file"`
}

// PackagesConfig adds native packages on top of the catalog set.
type PackagesConfig struct {
	Extra []string `toml:"extra"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color disables colored output when set to false. Nil means auto.
	Color *bool `toml:"color"`
}

// Config is the full optional override set. Zero values fall back to defaults.
type Config struct {
	Python   PythonConfig   `toml:"python"`
	Venv     VenvConfig     `toml:"venv"`
	Manifest ManifestConfig `toml:"manifest"`
	Packages PackagesConfig `toml:"packages"`
	Output   OutputConfig   `toml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Venv:     VenvConfig{Dir: DefaultVenvDir},
		Manifest: ManifestConfig{File: manifest.DefaultFileName},
	}
}

// Load reads the config file at path. A missing file is not an error: defaults
// are returned so a bare working directory behaves like an unconfigured one.
// Fields left unset in the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills defaults back in for blanked fields and expands ~ in paths.
func normalize(cfg *Config) error {
	if strings.TrimSpace(cfg.Venv.Dir) == "" {
		cfg.Venv.Dir = DefaultVenvDir
	}
	if strings.TrimSpace(cfg.Manifest.File) == "" {
		cfg.Manifest.File = manifest.DefaultFileName
	}
	expanded, err := homedir.Expand(cfg.Venv.Dir)
	if err != nil {
		return fmt.Errorf("expand venv dir %s: %w", cfg.Venv.Dir, err)
	}
	cfg.Venv.Dir = expanded
	return nil
}
