package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-onboarding/internal/observability"
	"github.com/jonathan/voice-onboarding/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify the user's intent",
	Long: `Classify free text as apply_job, post_job or learning_module.

Example:
  onboard classify --locale hi "मुझे नौकरी चाहिए"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	result, err := engine.ClassifyIntentDetailed(text, cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	msg, err := engine.IntentMessage(result.Intent, cfg.DefaultLocale)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintIntent(text, result, msg)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), types.IntentResponse{IntentResult: result, Message: msg})
}
