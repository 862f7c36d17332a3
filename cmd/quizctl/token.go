package main

import (
	"fmt"
	"time"

	"quizforge/internal/auth"
	"quizforge/internal/config"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token <user id>",
	Short: "Mint a bearer token signed with JWT_SECRET for local testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if role != auth.RoleTeacher && role != auth.RoleStudent {
			return fmt.Errorf("role must be %q or %q", auth.RoleTeacher, auth.RoleStudent)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}

		token, err := auth.NewTokenVerifier(cfg.Auth.JWTSecret).Sign(args[0], role, ttl)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("role", auth.RoleStudent, "teacher or student")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
}
