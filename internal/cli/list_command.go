package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app       *App
	reporting services.ReportingService
	out       io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, reporting: app.services.ReportingService, out: app.out}
}

// Execute prints every task newest first followed by a summary line
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	view := newConsoleView()
	ctrl := c.app.newController(view)
	if err := ctrl.RefreshList(ctx); err != nil {
		return err
	}

	rows := ctrl.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No tasks found")
		return nil
	}
	for _, row := range rows {
		printRow(c.out, row)
	}

	summary, err := c.reporting.GetSummary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%d tasks, %d done, %d pending\n", summary.Total, summary.Completed, summary.Pending)
	return nil
}
