// Package cmd - dashboard CLI commands
package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/config"
	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/logger"
)

var (
	verbose bool

	cfg *config.Config
)

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "ETF Dashboard - options and sector analysis CLI",
	Long: `ETF Dashboard - options and sector analysis CLI

Usage:
    go run ./cmd/dashboard [command]

Commands:
    serve              - Start the API server
    analyze <ticker>   - Analyze the options chain for a ticker
    signals            - Compute the cross-asset regime snapshot
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(signalsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(logger.Config{
		Level:       level,
		Format:      "pretty",
		ServiceName: "dashboard-cli",
	}); err != nil {
		return err
	}

	log.Debug().Msg("Configuration loaded")
	return nil
}
