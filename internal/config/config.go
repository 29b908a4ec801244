// Package config loads elvtdocs.yaml and the environment overrides applied on top of it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "elvtdocs.yaml"

// Config represents the application configuration.
type Config struct {
	DocsDir    string         `yaml:"docs_dir"`
	Output     OutputConfig   `yaml:"output"`
	Frameworks []framework.ID `yaml:"frameworks"`
	Server     ServerConfig   `yaml:"server"`
	Logging    LoggingConfig  `yaml:"logging"`
	Metrics    MetricsConfig  `yaml:"metrics"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `yaml:"-"`
}

// OutputConfig controls where and how showcase pages are written.
type OutputConfig struct {
	Directory string       `yaml:"directory"`
	Format    OutputFormat `yaml:"format"`
	Clean     bool         `yaml:"clean"` // Remove the output directory before a build
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// LoggingConfig configures the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DocsDir: "docs",
		Output: OutputConfig{
			Directory: "showcase",
			Format:    OutputFormatJSON,
		},
		Frameworks: framework.All(),
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load reads configPath on top of the defaults. A missing file is not an
// error. Environment files are loaded first so ${VAR} references and the
// ELVTDOCS_* overrides can see them.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, errors.ConfigError("failed to parse configuration").
				WithCause(err).
				WithContext("path", configPath).
				Build()
		}
		cfg.Source = configPath
	case os.IsNotExist(err):
	default:
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read configuration").
			WithContext("path", configPath).
			Build()
	}

	applyEnvOverrides(cfg)
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes the default configuration to configPath. An existing file is
// only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
