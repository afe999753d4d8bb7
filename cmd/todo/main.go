package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-list/internal/cli"
	"todo-list/internal/config"
	"todo-list/internal/ui/desktop"
	"todo-list/internal/ui/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand()
	errorHandler := cli.NewErrorHandler()

	exit := func(err error) {
		root.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", errorHandler.HandleSimple(err))
			os.Exit(1)
		}
		os.Exit(0)
	}

	root.RegisterFrontend(config.FrontendGUI, "Open the task list window", func(cfg *config.Config) cli.Frontend {
		return desktop.New(cfg, desktop.WithExitHandler(exit))
	})
	root.RegisterFrontend(config.FrontendTUI, "Open the task list in the terminal", func(cfg *config.Config) cli.Frontend {
		return tui.New(cfg)
	})

	exit(root.ExecuteContext(ctx))
}
