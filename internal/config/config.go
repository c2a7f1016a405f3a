// Package config loads texprep configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-texprep/internal/fileutil"
	"github.com/alnah/go-texprep/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds per-project defaults for the texprep commands. CLI flags
// take precedence over every field.
type Config struct {
	Flatten  FlattenConfig  `yaml:"flatten"`
	Acronyms AcronymsConfig `yaml:"acronyms"`
	Bib      BibConfig      `yaml:"bib"`
}

// FlattenConfig defines defaults for the flatten command.
type FlattenConfig struct {
	Input      string `yaml:"input"`      // root document (default: main.tex)
	Output     string `yaml:"output"`     // merged output (default: main-expanded.tex)
	PageBreaks bool   `yaml:"pageBreaks"` // rewrite \newpage/\clearpage to the marker
}

// AcronymsConfig defines defaults for the acronyms command.
type AcronymsConfig struct {
	Definitions string `yaml:"definitions"` // file with \DeclareAcronym blocks
}

// BibConfig defines defaults for the bib command.
type BibConfig struct {
	TexDir         string   `yaml:"texDir"`         // directory scanned for \cite (default: .)
	Output         string   `yaml:"output"`         // filtered output (default: references.bib)
	ExcludedFields []string `yaml:"excludedFields"` // empty = built-in default list
}

// DefaultConfig returns the defaults matching a bare project layout.
func DefaultConfig() *Config {
	return &Config{
		Flatten: FlattenConfig{
			Input:  "main.tex",
			Output: "main-expanded.tex",
		},
		Bib: BibConfig{
			TexDir: ".",
			Output: "references.bib",
		},
	}
}

// Validate checks field shapes that YAML parsing cannot.
func (c *Config) Validate() error {
	for i, field := range c.Bib.ExcludedFields {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("bib.excludedFields[%d]: field name cannot be blank", i)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A nameOrPath containing a path separator is treated as a file path;
// otherwise it is searched in standard locations. Missing files are an
// error, never a silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-texprep", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
