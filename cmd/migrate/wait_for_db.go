package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/SideQuest_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct {
	maxRetries int
	interval   time.Duration
}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the database to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, _ []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	retries, interval := c.maxRetries, c.interval
	if retries <= 0 {
		retries = waitMaxRetries
	}
	if interval <= 0 {
		interval = waitRetryInterval
	}

	for i := 0; i < retries; i++ {
		err = ping(ctx, cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, retries, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", retries)
}

func ping(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}
