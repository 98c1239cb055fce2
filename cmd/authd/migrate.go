package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/auth-server/internal/config"
	"github.com/dtroode/auth-server/internal/database"
)

const (
	migrateUp      = "up"
	migrateDown    = "down"
	migrateVersion = "version"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|version]",
		Short:     "Run database migrations",
		Long:      `Apply pending migrations (up, the default), roll back the latest one (down) or print the current version.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{migrateUp, migrateDown, migrateVersion},
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	direction := migrateUp
	if len(args) == 1 {
		direction = args[0]
	}

	ctx := cmd.Context()

	switch direction {
	case migrateDown:
		if err := database.Rollback(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		cmd.Println("Rolled back latest migration")
	case migrateVersion:
		v, err := database.Version(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("failed to read migration version: %w", err)
		}
		cmd.Printf("Database version: %d\n", v)
	default:
		if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		cmd.Println("Migrations completed successfully")
	}

	return nil
}
