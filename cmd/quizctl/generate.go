package main

import (
	"encoding/json"
	"fmt"

	"quizforge/internal/service"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate multiple-choice questions for a topic and print them as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")

		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.logger.Sync()

		generator := service.NewQuizGenerationService(p.orch, p.cfg.AI.MaxQuestions, p.logger)
		draft, err := generator.GenerateQuestions(cmd.Context(), args[0], n)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(draft); err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 5, "number of questions")
}
