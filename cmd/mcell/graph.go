package main

import (
	"fmt"
	"os"

	"github.com/plin1112/mcell/internal/presentation/graph"
	"github.com/plin1112/mcell/pkg/dsl"
	"github.com/plin1112/mcell/pkg/scenefile"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <scene.yaml>",
	Short: "Render the scene hierarchy as a Mermaid flowchart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}
		model, err := scenefile.Load(args[0], dsl.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if highlight, _ := cmd.Flags().GetStringSlice("highlight"); len(highlight) > 0 {
			overlay = &graph.Overlay{Highlight: highlight}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(model.Scene.Root(), model.Sites, overlay))
	},
}

func init() {
	graphCmd.Flags().StringSlice("highlight", nil, "Object names to highlight")
	rootCmd.AddCommand(graphCmd)
}
