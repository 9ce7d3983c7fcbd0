// File: root.go
// Title: plinth Root Command
// Description: Defines the root cobra command, global flags, and the
//              shared logger and configuration setup.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plinth-go/plinth/core/config"
	"github.com/plinth-go/plinth/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "plinth",
	Short: "plinth - string, path, and URI inspection tool",
	Long: `plinth inspects and transforms the value types of the plinth
foundation library from the command line.

Commands:
  str      - string lengths, hash, and case folding
  path     - parse and transform file system paths
  uri      - parse and re-render URIs
  find     - locate files through a search path list
  version  - show version information`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

// setup loads the configuration and builds the shared logger before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "PLINTH",
		})
		if err != nil {
			return err
		}
	} else {
		options := config.DefaultDiscoveryOptions()
		options.EnvPrefix = "PLINTH"
		options.Required = false
		cfg, err = config.Discover(options, nil)
		if err != nil {
			return err
		}
	}

	level, _ := log.ParseLevel(cfg.GetString("log.level", "warn"))
	if verbose {
		level = log.LevelDebug
	}
	format := log.Format(cfg.GetString("log.format", "text"))
	if logFormat != "" {
		format = log.Format(logFormat)
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "plinth",
	}).WithNewRequestID()

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
