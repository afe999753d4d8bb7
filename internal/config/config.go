package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Supported storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MaxTextLength is the width of the text column. The configured limit may
// be lower but never higher.
const MaxTextLength = 50

// Supported frontends
const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

// Config holds all configuration options for the to-do list application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
	Commands    CommandsConfig    `toml:"commands"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string `toml:"driver" env:"TODO_DB_DRIVER,lower"`
	Dir            string `toml:"dir" env:"TODO_DB_DIR"`
	Filename       string `toml:"filename" env:"TODO_DB_FILENAME"`
	DSN            string `toml:"dsn" env:"TODO_DB_DSN"`
	DirPermissions uint32 `toml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS,octal"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TextMaxLength int `toml:"text_max_length" env:"TODO_VALIDATION_TEXT_MAX"`
}

// DisplayConfig holds display configuration shared by the frontends
type DisplayConfig struct {
	Title            string `toml:"title" env:"TODO_DISPLAY_TITLE"`
	Placeholder      string `toml:"placeholder" env:"TODO_DISPLAY_PLACEHOLDER"`
	EmptyPlaceholder string `toml:"empty_placeholder" env:"TODO_DISPLAY_EMPTY_PLACEHOLDER"`
	DefaultFrontend  string `toml:"default_frontend" env:"TODO_DISPLAY_FRONTEND,lower"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose  bool   `toml:"verbose" env:"TODO_APP_VERBOSE"`
	LogLevel string `toml:"log_level" env:"TODO_APP_LOG_LEVEL"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ExportDefaultFormat string `toml:"export_default_format" env:"TODO_EXPORT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults. The database
// lives next to the working directory unless configured otherwise.
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            ".",
			Filename:       "tasks.db",
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TextMaxLength: MaxTextLength,
		},
		Display: DisplayConfig{
			Title:            "Task List",
			Placeholder:      "Enter a task",
			EmptyPlaceholder: "Empty input",
			DefaultFrontend:  FrontendGUI,
		},
		Application: ApplicationConfig{
			Verbose:  false,
			LogLevel: "info",
		},
		Commands: CommandsConfig{
			ExportDefaultFormat: "csv",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(expandPath(c.Database.Dir), c.Database.Filename)
}

// GetLogLevel returns the effective log level
func (c *Config) GetLogLevel() string {
	if c.Application.Verbose {
		return "debug"
	}
	return c.Application.LogLevel
}

// LoadFromEnvironment applies the TODO_* variables named in the env tags
func (c *Config) LoadFromEnvironment() error {
	applyEnv(reflect.ValueOf(c))
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "postgres driver requires a dsn"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "unknown driver " + strconv.Quote(c.Database.Driver)}
	}

	// Validate validation configuration
	if c.Validation.TextMaxLength < 1 || c.Validation.TextMaxLength > MaxTextLength {
		return &ConfigError{
			Field:   "validation.text_max_length",
			Message: fmt.Sprintf("text maximum length must be between 1 and %d", MaxTextLength),
		}
	}

	// Validate display configuration
	if c.Display.Placeholder == "" {
		return &ConfigError{Field: "display.placeholder", Message: "placeholder cannot be empty"}
	}
	if c.Display.EmptyPlaceholder == "" {
		return &ConfigError{Field: "display.empty_placeholder", Message: "empty placeholder cannot be empty"}
	}
	if c.Display.DefaultFrontend != FrontendGUI && c.Display.DefaultFrontend != FrontendTUI {
		return &ConfigError{Field: "display.default_frontend", Message: "frontend must be gui or tui"}
	}

	// Validate commands configuration
	switch c.Commands.ExportDefaultFormat {
	case "csv", "json", "pdf":
	default:
		return &ConfigError{Field: "commands.export_default_format", Message: "export format must be csv, json or pdf"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// expandPath expands a leading ~ and environment variables in paths
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
