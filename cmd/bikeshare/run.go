package main

import (
	"github.com/aretw0/bikeshare/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive exploration session",
	Long:  `Asks for a city, month and day, prints the statistics, and offers to restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		return cli.RunSession(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	// 'run' is the default when no command is provided
	rootCmd.RunE = runCmd.RunE
}
