package main

import (
	"fmt"

	"github.com/aretw0/dialsim"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dialsim",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dialsim version %s\n", dialsim.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
