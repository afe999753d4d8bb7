package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-list/internal/controller"
	"todo-list/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
	out io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, out: app.out}
}

// Execute stores the joined arguments as a new task and prints the list
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	view := newConsoleView()
	ctrl := c.app.newController(view)

	if err := ctrl.AddTask(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	if ctrl.InputState() == controller.InputEmpty {
		return errors.NewEmptyInputError("text")
	}

	rows := ctrl.Rows()
	if len(rows) > 0 {
		fmt.Fprintf(c.out, "Added task %d\n", rows[0].ID)
	}
	for _, row := range rows {
		printRow(c.out, row)
	}
	return nil
}
