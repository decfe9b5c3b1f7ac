package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SideQuest_Go/internal/config"
	"github.com/osse101/SideQuest_Go/internal/database"
)

// openMigrator connects with the configured database and wraps it for goose.
// The returned func releases both the migrator and the pool.
func openMigrator(ctx context.Context) (*database.Migrator, func(), error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, nil, err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: cfg.DBMaxConns})
	if err != nil {
		return nil, nil, err
	}

	m, err := database.NewMigrator(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return m, func() { closeAll(m, pool) }, nil
}

func closeAll(m *database.Migrator, pool *pgxpool.Pool) {
	if err := m.Close(); err != nil {
		PrintWarning("closing migrator: %v", err)
	}
	pool.Close()
}

type UpCommand struct{}

func (c *UpCommand) Name() string        { return "up" }
func (c *UpCommand) Description() string { return "Apply all pending migrations" }

func (c *UpCommand) Run(ctx context.Context, _ []string) error {
	PrintHeader("Applying migrations")
	m, done, err := openMigrator(ctx)
	if err != nil {
		return err
	}
	defer done()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	PrintSuccess("Applied %d migration(s)", n)
	return nil
}

type DownCommand struct{}

func (c *DownCommand) Name() string        { return "down" }
func (c *DownCommand) Description() string { return "Roll back the most recent migration" }

func (c *DownCommand) Run(ctx context.Context, _ []string) error {
	PrintHeader("Rolling back one migration")
	m, done, err := openMigrator(ctx)
	if err != nil {
		return err
	}
	defer done()

	if err := m.Down(ctx); err != nil {
		return err
	}
	PrintSuccess("Rolled back")
	return nil
}

type StatusCommand struct{}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Show applied and pending migrations" }

func (c *StatusCommand) Run(ctx context.Context, _ []string) error {
	m, done, err := openMigrator(ctx)
	if err != nil {
		return err
	}
	defer done()

	states, err := m.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
	}
	return tw.Flush()
}
