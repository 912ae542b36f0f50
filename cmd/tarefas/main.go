package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/felixgeelhaar/tarefas/adapter/cli/shell"
	"github.com/felixgeelhaar/tarefas/adapter/cli/task"
	"github.com/felixgeelhaar/tarefas/adapter/tui"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
)

func main() {
	// Logger used until the configuration has been loaded
	cli.SetLogger(observability.LoggerFromEnv())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Register commands
	cli.AddCommand(task.NewCmd())
	cli.AddCommand(shell.NewCmd())
	cli.AddCommand(tui.NewCmd())

	// Execute CLI
	cli.Execute(ctx)
}
