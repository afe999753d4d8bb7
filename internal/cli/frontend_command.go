package cli

import (
	"context"

	"todo-list/internal/logging"
)

// FrontendCommand runs an interactive frontend
type FrontendCommand struct {
	app     *App
	factory FrontendFactory
}

// NewFrontendCommand creates a command that starts the frontend built by factory
func NewFrontendCommand(app *App, factory FrontendFactory) *FrontendCommand {
	return &FrontendCommand{app: app, factory: factory}
}

// Execute blocks until the frontend exits
func (c *FrontendCommand) Execute(ctx context.Context, args []string) error {
	view := c.factory(c.app.config)
	ctrl := c.app.newController(view)

	logging.Default().Debug("starting frontend", "max_length", ctrl.MaxTextLength())
	return view.Run(ctx, ctrl)
}
