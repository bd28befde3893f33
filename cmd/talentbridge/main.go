// Package main provides the talentbridge CLI: the evaluation HTTP API and one-shot
// evaluation commands over JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debugMode  bool
	jsonLogs   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "talentbridge",
	Short: "TalentBridge evaluation service",
	Long: "TalentBridge scores candidate and company profiles, evaluates job and recruiting health, " +
		"classifies hiring pipelines and renders anonymized marketplace views, as a REST API or per command.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML, JSON or TOML config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a readable summary to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
