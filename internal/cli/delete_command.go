package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"todo-list/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	out io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, out: app.out}
}

// Execute removes one task by id
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}

	view := newConsoleView()
	ctrl := c.app.newController(view)
	if err := ctrl.RefreshList(ctx); err != nil {
		return err
	}

	found := false
	for _, row := range ctrl.Rows() {
		if row.ID == id {
			found = true
			break
		}
	}
	if !found {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	if err := ctrl.DeleteTask(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted task %d\n", id)
	return nil
}
