// Package main provides the onboard CLI: answer validation, intent
// classification and the HTTP API server for voice onboarding.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Voice onboarding answer validation",
	Long: `onboard validates transcribed onboarding answers (name, age, skill, experience, ...)
in English and Hindi, classifies the user's intent, and serves the same engine over HTTP.`,
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootCatalogs   string
	rootLocale     string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to onboard config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&rootCatalogs, "catalog", "", "Comma-separated catalog YAML files or directories applied over the built-in data")
	rootCmd.PersistentFlags().StringVarP(&rootLocale, "locale", "l", "", "Locale of the answer (en, hi, en-IN, ...); defaults to the configured locale")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print human-readable summaries instead of JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
