package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/export"
	"todo-list/internal/logging"
	"todo-list/internal/services"
)

// createOutput opens the export destination named by output=
var createOutput = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// ExportCommand handles the export command
type ExportCommand struct {
	app   *App
	tasks services.TaskService
	out   io.Writer
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app, tasks: app.services.TaskService, out: app.out}
}

// Execute writes the task list. Arguments are key=value pairs: format
// selects csv, json or pdf and output names a file instead of stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) (err error) {
	format := c.app.config.Commands.ExportDefaultFormat
	output := ""
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.NewInvalidInputError("argument", arg, "usage: todo export format=csv|json|pdf output=FILE")
		}
		switch key {
		case "format":
			format = value
		case "output":
			output = value
		default:
			return errors.NewInvalidInputError("argument", arg, "unknown option "+key)
		}
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	exporter, err := export.New(f, export.Options{Title: c.app.config.Display.Title})
	if err != nil {
		return err
	}

	tasks, err := c.tasks.ListTasks(ctx)
	if err != nil {
		return err
	}

	w := c.out
	if output != "" {
		file, createErr := createOutput(output)
		if createErr != nil {
			return errors.NewInvalidInputError("output", output, createErr.Error())
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = errors.NewInvalidInputError("output", output, closeErr.Error())
			}
		}()
		w = file
	}

	if err := exporter.Export(w, tasks); err != nil {
		return err
	}
	logging.Default().Debug("exported tasks", "format", f, "count", len(tasks), "output", output)
	return nil
}
