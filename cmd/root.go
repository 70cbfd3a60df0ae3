// Package cmd implements the webresearch command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"webresearch/config"
)

var version = "dev"

var (
	flagConfig string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "webresearch",
	Short: "Web research agent",
	Long:  "webresearch asks a language model for candidate sources on a topic, fetches and summarizes them, and assembles a markdown research report.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: RESEARCH_CONFIG env or environment-only)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of markdown")

	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webresearch %s\n", version)
	},
}

// loadConfig resolves configuration from --config, RESEARCH_CONFIG, or the
// environment alone, in that order.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.GetConfigPath()
	}
	if path != "" {
		return config.Load(path)
	}
	return config.FromEnv()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
