package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RAMYA-PARSANIA/se-to-do/internal/config"
	"github.com/RAMYA-PARSANIA/se-to-do/internal/logging"
	"github.com/RAMYA-PARSANIA/se-to-do/internal/tasks"
)

// loadConfig merges config sources and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if storeFile != "" {
		cfg.Storage.File = storeFile
	}
	if storeFormat != "" {
		cfg.Storage.Format = storeFormat
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// openStore builds the task store described by the merged configuration
func openStore(cmd *cobra.Command) (*tasks.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	format := cfg.Storage.Format
	if format == "" {
		format = tasks.FormatFromPath(cfg.Storage.File)
	}
	codec, err := tasks.CodecFor(format)
	if err != nil {
		return nil, err
	}

	store := tasks.New(cfg.Storage.File,
		tasks.WithCodec(codec),
		tasks.WithLogger(logger.WithField("command", cmd.Name())),
	)

	logger.WithFields(logrus.Fields{
		"path":   store.Path(),
		"format": store.Format(),
		"tasks":  store.Len(),
	}).Debug("opened task store")

	return store, nil
}
