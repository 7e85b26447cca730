package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/voice-onboarding/internal/observability"
	"github.com/jonathan/voice-onboarding/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate a whole set of onboarding answers",
	Long: `Validate every answer in a JSON or YAML file mapping field keys to answer text,
for example {"name": "my name is Sita", "age": "twenty five"}.`,
	RunE: runBatch,
}

var batchInput string

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Path to answers file (required)")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(batchInput)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	// YAML is a superset of JSON, but JSON errors are clearer for .json input.
	answers := make(map[string]string)
	if json.Valid(content) {
		err = json.Unmarshal(content, &answers)
	} else {
		err = yaml.Unmarshal(content, &answers)
	}
	if err != nil {
		return fmt.Errorf("failed to parse answers file: %w", err)
	}
	if len(answers) == 0 {
		return fmt.Errorf("answers file %s is empty", batchInput)
	}

	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	results, err := engine.ValidateAll(cmd.Context(), answers, cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintBatch(results)
		return nil
	}

	resp := types.BatchValidateResponse{
		Results:  make(map[string]types.ValidateResponse, len(results)),
		AllValid: true,
	}
	for key, result := range results {
		item := types.ValidateResponse{FieldKey: key, ValidationResult: result}
		if !result.Valid {
			if item.ErrorMessage, err = engine.Message(key, result.ErrorCode, cfg.DefaultLocale); err != nil {
				return err
			}
			resp.AllValid = false
		}
		resp.Results[key] = item
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
