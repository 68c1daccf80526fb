package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TASKMAN_STORAGE_FILE
const EnvPrefix = "TASKMAN"

var envKeys = []string{
	"storage.file",
	"storage.format",
	"log.level",
	"log.format",
}

// Load merges configuration from defaults, the global file, the project
// file, an optional explicit file, .env and the environment (later wins).
func Load(explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Missing global/project files are fine; broken ones are not
	for _, path := range []string{GlobalConfigPath(), ProjectConfigPath()} {
		if path == "" {
			continue
		}
		if err := loadFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if explicitPath != "" {
		if err := loadFile(explicitPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", explicitPath, err)
		}
	}

	if err := loadDotEnv(DotEnvPath()); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// loadDotEnv exports variables from a .env file without overriding the
// real environment
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskman", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".taskman.yaml")
}

// DotEnvPath returns the path to the .env file in the working directory
func DotEnvPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".env")
}
