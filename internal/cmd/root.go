// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llbbl/greet/internal/config"
	"github.com/llbbl/greet/internal/greeter"
	"github.com/llbbl/greet/internal/logging"
)

// Version is set at build time with -ldflags
var Version = "dev"

// cfg is populated by the root command's PersistentPreRun.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print a greeting",
	Long:  `greet writes "Hello, world!" to standard output and exits.`,
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Config only tunes stderr diagnostics; invalid values silently fall back to defaults.
		loaded, err := config.Load()
		if err != nil {
			loaded = config.Default()
		}
		cfg = loaded
		logging.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return greeter.New(cmd.OutOrStdout()).Run()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "greet version %s\n", Version); err != nil {
			return fmt.Errorf("%w: %w", greeter.ErrWrite, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the configuration loaded for the current run, or nil before Execute.
func GetConfig() *config.Config {
	return cfg
}
