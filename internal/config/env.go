package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvDocsDir    = "ELVTDOCS_DOCS_DIR"
	EnvOutputDir  = "ELVTDOCS_OUTPUT_DIR"
	EnvServerAddr = "ELVTDOCS_SERVER_ADDR"
	EnvLogLevel   = "ELVTDOCS_LOG_LEVEL"
)

// envFiles are loaded in order without overriding variables already set, so
// .env.local wins over .env and the process environment wins over both.
var envFiles = []string{".env.local", ".env"}

func loadEnvFiles() []string {
	var loaded []string
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			continue
		}
		loaded = append(loaded, path)
	}
	return loaded
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDocsDir); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.Output.Directory = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
}
