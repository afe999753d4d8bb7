package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/services"
)

// commandTimeout bounds the one-shot commands. Interactive frontends run
// until the user quits.
const commandTimeout = 30 * time.Second

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	repo      repository.Repository
	app       *App
	frontends map[string]FrontendFactory
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{
		frontends: make(map[string]FrontendFactory),
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small persistent to-do list",
		Long: `todo keeps a list of short tasks in a local database.

Running todo without a command opens the default frontend (gui or tui).
Tasks are listed newest first; completed tasks are shown struck through.

EXAMPLES:
  todo                                    # Open the default frontend
  todo tui                                # Open the terminal frontend
  todo add "buy milk"                     # Add a task
  todo list                               # List tasks with a summary
  todo toggle 3                           # Mark task 3 done or not done
  todo delete 3                           # Delete task 3
  todo export --format json > tasks.json  # Export the list

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > todo.toml > defaults

    TODO_DB_DRIVER                        sqlite or postgres (default: sqlite)
    TODO_DB_DIR                           Database directory (default: .)
    TODO_DB_FILENAME                      Database filename (default: tasks.db)
    TODO_DB_DSN                           Postgres connection string
    TODO_VALIDATION_TEXT_MAX              Maximum task length (default: 50)
    TODO_DISPLAY_FRONTEND                 Default frontend (default: gui)
    TODO_APP_VERBOSE                      Enable verbose output (default: false)
    TODO_APP_LOG_LEVEL                    Log level (default: info)
    TODO_DEBUG                            Force debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runFrontend(cmd, root.config.Display.DefaultFrontend)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// RegisterFrontend makes a frontend available as a subcommand and as the
// default command target
func (r *RootCommand) RegisterFrontend(name, short string, factory FrontendFactory) {
	r.frontends[name] = factory
	r.cmd.AddCommand(&cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runFrontend(cmd, name)
		},
	})
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every
// command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Close releases the task store if a command opened it
func (r *RootCommand) Close() error {
	if r.repo == nil {
		return nil
	}
	err := r.repo.Close()
	r.repo = nil
	r.app = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Configuration file (default: todo.toml in the user config dir and working dir)")

	// Database configuration
	flags.String("db-driver", "", "Storage driver, sqlite or postgres (overrides TODO_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("db-dsn", "", "Postgres connection string (overrides TODO_DB_DSN)")

	// Validation configuration
	flags.Int("text-max-length", 0, "Maximum task length (overrides TODO_VALIDATION_TEXT_MAX)")

	// Display configuration
	flags.String("frontend", "", "Default frontend, gui or tui (overrides TODO_DISPLAY_FRONTEND)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TODO_APP_LOG_LEVEL)")
}

// addSubcommands adds the one-shot CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Long:  "Add a task to the list. The arguments are joined with spaces.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "add", args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "list", args)
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle [id]",
		Short: "Mark a task done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "toggle", args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "delete", args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task list as csv, json or pdf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var exportArgs []string
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				exportArgs = append(exportArgs, "format="+format)
			}
			if output, _ := cmd.Flags().GetString("output"); output != "" {
				exportArgs = append(exportArgs, "output="+output)
			}
			return r.run(cmd, "export", exportArgs)
		},
	}
	exportCmd.Flags().StringP("format", "f", "", "Export format: csv, json or pdf (default from config)")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	r.cmd.AddCommand(addCmd, listCmd, toggleCmd, deleteCmd, exportCmd)
}

// run executes a one-shot command with a timeout
func (r *RootCommand) run(cmd *cobra.Command, name string, args []string) error {
	app, err := r.ensureApp(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()
	return app.Run(ctx, name, args)
}

// runFrontend executes an interactive frontend without a timeout
func (r *RootCommand) runFrontend(cmd *cobra.Command, name string) error {
	if _, ok := r.frontends[name]; !ok {
		return fmt.Errorf("frontend %q is not available in this build", name)
	}
	app, err := r.ensureApp(cmd)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), name, nil)
}

// loadConfig builds the effective configuration and the logger
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()

	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader = config.NewLoaderWithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags(cmd))
	if err != nil {
		return err
	}
	r.config = cfg

	opts := logging.DefaultOptions()
	opts.Level = cfg.GetLogLevel()
	logging.SetDefault(logging.New(cmd.ErrOrStderr(), opts))
	return nil
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	overrides.DBDriver = stringFlag("db-driver")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DBDSN = stringFlag("db-dsn")
	overrides.DefaultFrontend = stringFlag("frontend")
	overrides.LogLevel = stringFlag("log-level")

	if flags.Changed("text-max-length") {
		v, _ := flags.GetInt("text-max-length")
		overrides.TextMaxLength = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// ensureApp opens the task store on first use and builds the application
func (r *RootCommand) ensureApp(cmd *cobra.Command) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}

	repo, err := config.CreateRepository(cmd.Context(), r.config)
	if err != nil {
		return nil, err
	}
	r.repo = repo

	r.app = NewApp(services.NewServiceContainer(repo, r.config), r.config, cmd.OutOrStdout())
	for name, factory := range r.frontends {
		r.app.RegisterFrontend(name, factory)
	}
	logging.Default().Debug("task store opened", "driver", r.config.Database.Driver)
	return r.app, nil
}
