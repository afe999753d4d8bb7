package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	apperrors "todo-list/internal/errors"
)

// runRoot executes a fresh root command against the database in dir
func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(dir, "todo.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		content := fmt.Sprintf("[database]\ndir = %q\n", dir)
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	}

	root := NewRootCommand()
	defer root.Close()

	var out bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetErr(&bytes.Buffer{})
	root.Command().SetArgs(append([]string{"--config", configPath}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	_, err := runRoot(t, dir, "add", "buy", "milk")
	require.NoError(t, err)
	_, err = runRoot(t, dir, "add", "call mom")
	require.NoError(t, err)
	_, err = runRoot(t, dir, "toggle", "1")
	require.NoError(t, err)

	out, err := runRoot(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "   2  [ ]  call mom")
	assert.Contains(t, out, "   1  [x]  ")
	assert.Contains(t, out, "2 tasks, 1 done, 1 pending")

	_, err = runRoot(t, dir, "rm", "2")
	require.NoError(t, err)

	out, err = runRoot(t, dir, "export", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "id,text,completed\n1,buy milk,true\n", out)

	_, err = os.Stat(filepath.Join(dir, "tasks.db"))
	assert.NoError(t, err)
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	dir := t.TempDir()

	t.Run("text max length", func(t *testing.T) {
		_, err := runRoot(t, dir, "--text-max-length", "3", "add", "abcd")
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))

		_, err = runRoot(t, dir, "--text-max-length", "3", "add", "abc")
		assert.NoError(t, err)
	})

	t.Run("db filename", func(t *testing.T) {
		_, err := runRoot(t, dir, "--db-filename", "other.db", "add", "elsewhere")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "other.db"))
		assert.NoError(t, err)
	})

	t.Run("invalid driver fails config validation", func(t *testing.T) {
		_, err := runRoot(t, dir, "--db-driver", "mysql", "list")
		var cfgErr *config.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	root := NewRootCommand()
	root.Command().SetOut(&bytes.Buffer{})
	root.Command().SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "list"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestRootCommand_StorageUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := runRoot(t, dir, "--db-dir", filepath.Join(blocker, "sub"), "list")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable))
}

func TestRootCommand_Frontends(t *testing.T) {
	dir := t.TempDir()

	newRoot := func(args ...string) (*RootCommand, *[]string) {
		var started []string
		root := NewRootCommand()
		for _, name := range []string{config.FrontendGUI, config.FrontendTUI} {
			name := name
			root.RegisterFrontend(name, "fake "+name, func(cfg *config.Config) Frontend {
				started = append(started, name)
				return &fakeFrontend{script: func(ctx context.Context, ctrl *controller.Controller) error {
					return nil
				}}
			})
		}
		configPath := filepath.Join(dir, "todo.toml")
		require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf("[database]\ndir = %q\n", dir)), 0o644))
		root.Command().SetOut(&bytes.Buffer{})
		root.Command().SetArgs(append([]string{"--config", configPath}, args...))
		return root, &started
	}

	t.Run("default frontend", func(t *testing.T) {
		root, started := newRoot()
		defer root.Close()
		require.NoError(t, root.Execute())
		assert.Equal(t, []string{config.FrontendGUI}, *started)
	})

	t.Run("frontend flag", func(t *testing.T) {
		root, started := newRoot("--frontend", "tui")
		defer root.Close()
		require.NoError(t, root.Execute())
		assert.Equal(t, []string{config.FrontendTUI}, *started)
	})

	t.Run("frontend subcommand", func(t *testing.T) {
		root, started := newRoot("tui")
		defer root.Close()
		require.NoError(t, root.Execute())
		assert.Equal(t, []string{config.FrontendTUI}, *started)
	})

	t.Run("unregistered frontend", func(t *testing.T) {
		root := NewRootCommand()
		defer root.Close()
		configPath := filepath.Join(dir, "todo.toml")
		root.Command().SetOut(&bytes.Buffer{})
		root.Command().SetArgs([]string{"--config", configPath})
		assert.Error(t, root.Execute())
	})
}
