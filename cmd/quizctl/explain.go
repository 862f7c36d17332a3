package main

import (
	"fmt"

	"quizforge/internal/service"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <question> <correct answer>",
	Short: "Explain why an answer is correct",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.logger.Sync()

		explanation, err := service.NewAnswerExplanationService(p.orch).Explain(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), explanation)
		return nil
	},
}
