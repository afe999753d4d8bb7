package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the optional configuration file
const FileName = "todo.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	paths    []string
	required bool
}

// NewLoader creates a new configuration loader that looks for todo.toml in
// the user config directory and then the working directory.
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
		paths:  DefaultConfigPaths(),
	}
}

// NewLoaderWithFile creates a loader that reads only the given file. A
// missing file is an error.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		paths:    []string{path},
		required: true,
	}
}

// DefaultConfigPaths returns the candidate config files in the order they are
// applied; later files override earlier ones.
func DefaultConfigPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "todo", FileName))
	}
	return append(paths, FileName)
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with todo.toml files
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	for _, path := range l.paths {
		if err := loadConfigFile(l.config, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) && !l.required {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadConfigFile decodes TOML from path over cfg. Keys absent from the file
// keep their current values.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDriver   *string
	DBDir      *string
	DBFilename *string
	DBDSN      *string

	// Validation overrides
	TextMaxLength *int

	// Display overrides
	DefaultFrontend *string

	// Application overrides
	Verbose  *bool
	LogLevel *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBDSN != nil {
		config.Database.DSN = *overrides.DBDSN
	}

	if overrides.TextMaxLength != nil {
		config.Validation.TextMaxLength = *overrides.TextMaxLength
	}

	if overrides.DefaultFrontend != nil {
		config.Display.DefaultFrontend = *overrides.DefaultFrontend
	}

	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.LogLevel != nil {
		config.Application.LogLevel = *overrides.LogLevel
	}
}
