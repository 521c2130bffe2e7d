package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/UDARAS8/bugtracker/common/logger"
	"github.com/UDARAS8/bugtracker/core/config"
	"github.com/UDARAS8/bugtracker/core/db"
	"github.com/UDARAS8/bugtracker/core/db/migrations"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Database migration tools",
		Long:         `Apply, roll back and inspect the embedded Postgres migrations.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
				from, err := goose.GetDBVersionContext(ctx, m.db)
				if err != nil {
					return fmt.Errorf("reading version: %w", err)
				}
				if err := goose.UpContext(ctx, m.db, "."); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}
				to, err := goose.GetDBVersionContext(ctx, m.db)
				if err != nil {
					return fmt.Errorf("reading version: %w", err)
				}
				slog.InfoContext(ctx, "migrations applied", "from_version", from, "to_version", to)
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
				for i := 0; i < steps; i++ {
					if err := goose.DownContext(ctx, m.db, "."); err != nil {
						return fmt.Errorf("rolling back step %d: %w", i+1, err)
					}
				}
				version, err := goose.GetDBVersionContext(ctx, m.db)
				if err != nil {
					return fmt.Errorf("reading version: %w", err)
				}
				slog.InfoContext(ctx, "migrations rolled back", "steps", steps, "version", version)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
				return goose.StatusContext(ctx, m.db, ".")
			})
		},
	}
}

type migrator struct {
	db *sql.DB
}

// withMigrator loads config, connects and points goose at the embedded migrations.
func withMigrator(ctx context.Context, fn func(ctx context.Context, m *migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	sqlDB := database.SQL()
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	return fn(ctx, &migrator{db: sqlDB})
}
