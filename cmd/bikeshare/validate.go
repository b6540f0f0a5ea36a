package main

import (
	"fmt"

	"github.com/aretw0/bikeshare/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the city datasets",
	Long:  `Resolves the city table and checks that every dataset exists and carries the required columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(runOptions(cmd)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All datasets are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
