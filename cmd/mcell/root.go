package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/plin1112/mcell"
	"github.com/plin1112/mcell/internal/logging"
	"github.com/plin1112/mcell/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcell",
	Short: "mcell checks and inspects particle simulation scenes",
	Long: `mcell loads YAML scene files describing an object hierarchy, species and
release sites, validates every release site and reports what a simulation
would release.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), mcell.Version)
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
}

// newLogger builds the command logger from the persistent flags.
// Logs go to stderr so stdout stays clean for reports.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	asJSON, _ := cmd.Flags().GetBool("log-json")
	return logging.NewWithOptions(logging.Options{
		Level:  level,
		JSON:   asJSON,
		Output: cmd.ErrOrStderr(),
	}), nil
}
