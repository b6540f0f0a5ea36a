package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bikeshare/internal/cli"
	"github.com/aretw0/bikeshare/pkg/dataset"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bike share trip data",
	Long: `bikeshare loads the trip records of Chicago, New York City or Washington,
filters them by month and day of week, and prints descriptive statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("data-dir", "", "Directory containing the city CSV files (overrides data_dir in the config)")
	rootCmd.PersistentFlags().String("config", dataset.DefaultConfigPath, "City table configuration (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("pretty", false, "Render statistics as styled markdown")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
}

// runOptions reads the persistent flags shared by every command.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	dataDir, _ := flags.GetString("data-dir")
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	pretty, _ := flags.GetBool("pretty")
	metricsAddr, _ := flags.GetString("metrics-addr")

	return cli.RunOptions{
		DataDir:     dataDir,
		ConfigPath:  configPath,
		Debug:       debug,
		Pretty:      pretty,
		MetricsAddr: metricsAddr,
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
	}
}
