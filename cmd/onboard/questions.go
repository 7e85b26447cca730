package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/voice-onboarding/internal/observability"
	"github.com/jonathan/voice-onboarding/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the onboarding question prompts",
	RunE:  runQuestions,
}

var questionsKey string

func init() {
	questionsCmd.Flags().StringVarP(&questionsKey, "key", "k", "", "Print only the prompt for this field key or alias")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	var questions []types.Question
	if questionsKey != "" {
		q, err := engine.Question(questionsKey, cfg.DefaultLocale)
		if err != nil {
			return err
		}
		questions = []types.Question{q}
	} else {
		questions, err = engine.Questions(cfg.DefaultLocale)
		if err != nil {
			return err
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintQuestions(questions)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), questions)
}
