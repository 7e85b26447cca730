package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-onboarding/internal/observability"
	"github.com/jonathan/voice-onboarding/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [answer text]",
	Short: "Validate one onboarding answer",
	Long: `Validate a transcribed answer for one onboarding field and print the result.

Example:
  onboard validate --field age --locale en "I am 25"`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

var validateField string

func init() {
	validateCmd.Flags().StringVarP(&validateField, "field", "f", "", "Field key or alias: name, age, skill, experience, sex, ... (required)")

	if err := validateCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	result, err := engine.Validate(validateField, text, cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	resp := types.ValidateResponse{FieldKey: validateField, ValidationResult: result}
	if !result.Valid {
		msg, err := engine.Message(validateField, result.ErrorCode, cfg.DefaultLocale)
		if err != nil {
			return err
		}
		resp.ErrorMessage = msg
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(validateField, result, resp.ErrorMessage)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
