package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/foundry90/internal/database"
)

const (
	migrationsDir     = "migrations"
	migrationTimeout  = 5 * time.Minute
	migrationTypeSQL  = "sql"
	migrateSubcommand = "up | down | status | create <name> [sql|go]"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return usageError("migrate %s", migrateSubcommand)
	}
	subcmd := args[0]

	// create only writes a file, no connection needed
	if subcmd == "create" {
		if len(args) < 2 {
			return usageError("migrate create <name> [sql|go]")
		}
		migrationType := migrationTypeSQL
		if len(args) > 2 {
			migrationType = args[2]
		}
		goose.SetSequential(true)
		if err := goose.Create(nil, migrationsDir, args[1], migrationType); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	pool, err := database.NewPool(databaseURL(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	provider, closeDB, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	switch subcmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			PrintInfo("No pending migrations")
		}
		for _, r := range results {
			PrintSuccess("Applied %05d %s (%s)", r.Source.Version, r.Source.Path, r.Duration)
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Rolled back %05d %s", r.Source.Version, r.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			if s.State == goose.StateApplied {
				PrintSuccess("%05d %-40s applied %s", s.Source.Version, s.Source.Path, s.AppliedAt.Format(time.RFC3339))
			} else {
				PrintWarning("%05d %-40s pending", s.Source.Version, s.Source.Path)
			}
		}
	default:
		return usageError("migrate %s", migrateSubcommand)
	}
	return nil
}
