package cli

import (
	"context"
	"sort"
	"strings"

	"todo-list/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("toggle", NewToggleCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("export", NewExportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Has reports whether a command is registered under name
func (r *CommandRegistry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	if !r.Has(commandName) {
		return errors.NewInvalidInputError("command", commandName, "unknown command, "+r.GetUsage())
	}
	return r.commands[commandName].Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return "usage: todo [" + strings.Join(names, " | ") + "]"
}
