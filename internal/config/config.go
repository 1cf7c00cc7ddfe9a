package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"mpd2html/internal/catalog"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	AssetsDir string `toml:"assets_dir"`
}

// Input describes how export files are decoded.
type Input struct {
	Encoding string `toml:"encoding"`
}

// Logging contains log output settings.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	Verbose       bool   `toml:"verbose"`
	RetentionDays int    `toml:"retention_days"`
}

// Render controls which listing pages are written.
type Render struct {
	Pages      []string `toml:"pages"`
	WriteIndex bool     `toml:"write_index"`
	Title      string   `toml:"title"`
	Workers    int      `toml:"workers"`
}

// Validation overrides the default anomaly severities, keyed by anomaly kind.
type Validation struct {
	Severity map[string]string `toml:"severity"`
}

// Config encapsulates all configuration values for mpd2html.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Input      Input      `toml:"input"`
	Logging    Logging    `toml:"logging"`
	Render     Render     `toml:"render"`
	Validation Validation `toml:"validation"`
}

const (
	defaultConfigPath = "~/.config/mpd2html/config.toml"
	projectConfigName = "mpd2html.toml"
)

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

// Policy returns the catalog severity policy with configured overrides applied.
func (c *Config) Policy() (catalog.Policy, error) {
	return catalog.DefaultPolicy().WithOverrides(c.Validation.Severity)
}

// SortAttributes returns the configured pages as catalog sort attributes.
func (c *Config) SortAttributes() ([]catalog.SortAttribute, error) {
	attrs := make([]catalog.SortAttribute, 0, len(c.Render.Pages))
	for _, page := range c.Render.Pages {
		attr, err := catalog.ParseSortAttribute(page)
		if err != nil {
			return nil, fmt.Errorf("render.pages: %w", err)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for command-line arguments.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
