package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures the application logger
type Options struct {
	Level           string
	Prefix          string
	ReportTimestamp bool
}

// DefaultOptions returns the logger options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Level:           "info",
		Prefix:          "todo",
		ReportTimestamp: false,
	}
}

var (
	mu     sync.Mutex
	shared *log.Logger
)

// New creates a logger writing to w. Debug output is forced on when
// TODO_DEBUG is set.
func New(w io.Writer, opts Options) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = log.InfoLevel
	}
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
		Formatter:       log.TextFormatter,
	})
}

// Default returns the process-wide logger, creating it on stderr if needed
func Default() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if shared == nil {
		shared = New(os.Stderr, DefaultOptions())
	}
	return shared
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	shared = logger
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf logs a formatted debug message through the shared logger. It is
// shown when the level is debug, which --verbose, log_level = "debug" and
// TODO_DEBUG all select.
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}
