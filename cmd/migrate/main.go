package main

import (
	"fmt"
	"log"
	"os"

	"quizforge/database"
	"quizforge/internal/config"
	internaldb "quizforge/internal/database"
	"quizforge/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or revert the Oracle schema migrations",
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *internaldb.Migrator, l *zap.Logger) error {
				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				l.Info("Migrations applied", zap.Int("count", n))
				return nil
			})
		},
	})

	var all bool
	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations, one step by default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				steps = 0
			} else if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withMigrator(cmd, func(m *internaldb.Migrator, l *zap.Logger) error {
				n, err := m.Down(cmd.Context(), steps)
				if err != nil {
					return err
				}
				l.Info("Migrations reverted", zap.Int("count", n))
				return nil
			})
		},
	}
	down.Flags().BoolVar(&all, "all", false, "revert every applied migration")
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")
	root.AddCommand(down)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *internaldb.Migrator, _ *zap.Logger) error {
				v, dirty, ok, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
				return nil
			})
		},
	})

	return root
}

func withMigrator(cmd *cobra.Command, fn func(*internaldb.Migrator, *zap.Logger) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := internaldb.NewSQLXOracleDB(cmd.Context(), cfg.GetDSN(), l)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := internaldb.NewMigrator(db, database.Migrations, database.MigrationsDir, l)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m, l)
}
