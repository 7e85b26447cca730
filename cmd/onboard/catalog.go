package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-onboarding/internal/match"
	"github.com/jonathan/voice-onboarding/internal/observability"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the loaded reference catalogs",
	Long: `Without flags, summarize every loaded catalog. With --name, list one catalog's
canonical terms; add --lookup to find the nearest entry for a phrase.

Example:
  onboard catalog --name skills --lookup "paintr"`,
	RunE: runCatalog,
}

var (
	catalogName   string
	catalogLookup string
)

// catalogEntry is the JSON form of one canonical term.
type catalogEntry struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogName, "name", "n", "", "Catalog name (skills, locations, genders, ...)")
	catalogCmd.Flags().StringVar(&catalogLookup, "lookup", "", "Phrase to match against the catalog (requires --name)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if catalogLookup != "" && catalogName == "" {
		return fmt.Errorf("--lookup requires --name")
	}

	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if catalogName == "" {
		if cfg.Verbose {
			printer.PrintInfo(engine.Info())
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), engine.Info())
	}

	c, err := engine.Bundle().Catalog(catalogName)
	if err != nil {
		return err
	}

	if catalogLookup != "" {
		result := match.BestPhrase(catalogLookup, c, 0)
		if cfg.Verbose {
			printer.PrintMatch(c.Name(), catalogLookup, result)
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), result)
	}

	if cfg.Verbose {
		printer.PrintCatalog(c)
		return nil
	}
	entries := make([]catalogEntry, 0, c.Len())
	for _, canonical := range c.Canonicals() {
		entries = append(entries, catalogEntry{Canonical: canonical, Aliases: c.AliasesOf(canonical)})
	}
	return writeJSON(cmd.OutOrStdout(), entries)
}
