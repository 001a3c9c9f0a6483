package main

import (
	"fmt"

	"github.com/plin1112/mcell"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mcell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mcell version %s\n", mcell.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
