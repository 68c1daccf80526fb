package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			File: "tasks.json",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# taskman configuration
version: "1"

# Task file
storage:
  file: tasks.json
  # json, yaml or toml; inferred from the file extension when empty
  format: ""

# Diagnostics (written to stderr)
log:
  level: warn   # debug, info, warn, error
  format: text  # text or json
`
	return os.WriteFile(path, []byte(content), 0644)
}
