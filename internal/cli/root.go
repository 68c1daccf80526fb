package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	configPath  string
	storeFile   string
	storeFormat string
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskman",
		Short: "taskman - a small persistent task list",
		Long: `taskman keeps a list of short text tasks in a local file.

Run without a subcommand to open the interactive menu, or use the
subcommands below for one-shot changes from scripts.`,
		Args:          cobra.NoArgs,
		RunE:          runInteractive, // Default action is the menu
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to load after the global and project files")
	rootCmd.PersistentFlags().StringVarP(&storeFile, "file", "f", "", "Task file (default from config, then tasks.json)")
	rootCmd.PersistentFlags().StringVar(&storeFormat, "format", "", "Task file format: json, yaml or toml (default from extension)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
