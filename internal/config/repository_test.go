package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/repository"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TODO_DB_DIR", filepath.Join(tmpDir, "nested"))

	_, err := NewLoaderWithFile(filepath.Join(tmpDir, "absent.toml")).Load()
	require.Error(t, err, "an explicit config file must exist")

	loader := &Loader{config: NewConfig()}
	cfg, err := loader.Load()
	require.NoError(t, err)

	repo, err := CreateRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(filepath.Join(tmpDir, "nested", "tasks.db"))
	assert.NoError(t, err, "database file should be created in the configured directory")

	task := &repository.Task{Text: "Test Task"}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestCreateRepository_InMemory(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Filename = ":memory:"

	repo, err := CreateRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, repo.CreateTask(context.Background(), &repository.Task{Text: "in memory"}))
	tasks, err = repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestCreateRepository_UnknownDriver(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "oracle"

	repo, err := CreateRepository(context.Background(), cfg)
	assert.Nil(t, repo)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable))
}

func TestCreateRepository_UnwritableDir(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(blocker, "sub")

	_, err := CreateRepository(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable))
}
