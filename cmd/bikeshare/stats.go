package main

import (
	"github.com/aretw0/bikeshare/internal/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics of one filter without prompting",
	Example: `  bikeshare stats --city chicago
  bikeshare stats --city "new york city" --month june --day friday`,
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		month, _ := cmd.Flags().GetString("month")
		day, _ := cmd.Flags().GetString("day")

		return cli.RunOnce(cli.StatsOptions{
			RunOptions: runOptions(cmd),
			City:       city,
			Month:      month,
			Day:        day,
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("city", "", "City to analyze (chicago, new york city, washington)")
	statsCmd.Flags().String("month", "all", "Month filter (all, january ... june)")
	statsCmd.Flags().String("day", "all", "Day of week filter (all, monday ... sunday)")
	_ = statsCmd.MarkFlagRequired("city")
}
