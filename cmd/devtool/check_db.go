package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/foundry90/internal/database"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Check that the database is reachable and fully migrated"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(databaseURL(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()
	PrintSuccess("Database is reachable")

	provider, closeDB, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("read migration status: %w", err)
	}
	pending := 0
	for _, s := range statuses {
		if s.State == goose.StatePending {
			pending++
		}
	}
	if pending > 0 {
		PrintWarning("%d pending migration(s); run devtool migrate up", pending)
		return fmt.Errorf("database schema is behind")
	}

	PrintSuccess("Database check complete")
	return nil
}

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	maxRetries := 30
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err := database.NewPool(databaseURL(), 1, time.Minute, time.Minute)
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", maxRetries)
}
