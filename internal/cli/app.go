package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	"todo-list/internal/errors"
	"todo-list/internal/services"
)

// Frontend is an interactive view that owns its event loop
type Frontend interface {
	controller.View
	// Run loads the list and processes user events until the user quits
	// or a storage error occurs.
	Run(ctx context.Context, ctrl *controller.Controller) error
}

// FrontendFactory builds a frontend from the effective configuration
type FrontendFactory func(cfg *config.Config) Frontend

// App represents the main CLI application
type App struct {
	services *services.ServiceContainer
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config, out io.Writer) *App {
	app := &App{
		services: container,
		config:   cfg,
		out:      out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// RegisterFrontend makes an interactive frontend runnable by name
func (a *App) RegisterFrontend(name string, factory FrontendFactory) {
	a.registry.Register(name, NewFrontendCommand(a, factory))
}

// Run executes a registered command
func (a *App) Run(ctx context.Context, name string, args []string) error {
	return a.registry.Execute(ctx, name, args)
}

// newController builds a controller around a view for one command
func (a *App) newController(view controller.View) *controller.Controller {
	return controller.New(a.services.TaskService, view)
}

// parseTaskID parses a positive task id argument
func parseTaskID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewInvalidInputError("id", args[0], "must be a positive number")
	}
	return id, nil
}

// printRow prints one task line: id, checkbox and display text
func printRow(w io.Writer, row controller.Row) {
	mark := " "
	if row.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s]  %s\n", row.ID, mark, row.Display)
}
