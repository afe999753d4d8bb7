package cli

import (
	"context"
	"io"
	"strconv"

	"todo-list/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
	out io.Writer
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app, out: app.out}
}

// Execute flips the completion state of one task and prints its new row
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}

	view := newConsoleView()
	ctrl := c.app.newController(view)
	if err := ctrl.RefreshList(ctx); err != nil {
		return err
	}
	if err := ctrl.ToggleTask(ctx, id); err != nil {
		return err
	}

	if len(view.updated) == 0 {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	for _, row := range view.updated {
		printRow(c.out, row)
	}
	return nil
}
