package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/plin1112/mcell/internal/presentation/tui"
	"github.com/plin1112/mcell/pkg/dsl"
	"github.com/plin1112/mcell/pkg/scenefile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>...",
	Short: "Validate scene files",
	Long:  `Builds each scene and checks every release site. All problems in a file are reported together.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}
		if failed := runValidate(cmd.OutOrStdout(), logger, args); failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate reports on each path and returns how many failed.
func runValidate(w io.Writer, logger *slog.Logger, paths []string) int {
	failed := 0
	for _, path := range paths {
		model, err := scenefile.Load(path, dsl.WithLogger(logger))
		if err != nil {
			failed++
			tui.Failure(w, "Validation failed: %v", err)
			continue
		}
		tui.Success(w, "%s is valid! ✅ (%d release sites)", path, len(model.Sites))
	}
	return failed
}
