package main

import (
	"fmt"

	"github.com/aretw0/bikeshare"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bikeshare",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bikeshare version %s\n", bikeshare.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
