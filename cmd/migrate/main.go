package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SideQuest_Go/internal/logger"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&UpCommand{})
	r.Register(&DownCommand{})
	r.Register(&StatusCommand{})
	r.Register(&WaitForDBCommand{})
	return r
}

func main() {
	logger.InitLogger(logger.NewConfig("info", "text", "sidequest-migrate", "", "", false))

	registry := newRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		stop()
		os.Exit(1)
	}
}
