package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/repository"
)

// setupTestDB connects to TODO_TEST_POSTGRES_DSN and starts from an empty table.
func setupTestDB(t *testing.T) *PgRepository {
	t.Helper()
	dsn := os.Getenv("TODO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TODO_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	repo, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	_, err = repo.pool.Exec(ctx, `TRUNCATE tasks RESTART IDENTITY`)
	require.NoError(t, err)
	return repo
}

func TestNew_StorageUnavailable(t *testing.T) {
	_, err := New(context.Background(), "postgres://nobody@127.0.0.1:1/none?connect_timeout=1")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable))
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New(context.Background(), "::not a dsn::")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable))
}

func TestPgRepository_CRUD(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	for _, text := range []string{"T1", "T2", "T3"} {
		require.NoError(t, repo.CreateTask(ctx, &repository.Task{Text: text}))
	}

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "T3", tasks[0].Text)
	assert.Equal(t, "T1", tasks[2].Text)
	assert.False(t, tasks[0].Completed)

	require.NoError(t, repo.ToggleTask(ctx, tasks[0].ID))
	require.NoError(t, repo.ToggleTask(ctx, 999999))
	after, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.True(t, after[0].Completed)
	assert.False(t, after[1].Completed)

	require.NoError(t, repo.DeleteTask(ctx, tasks[0].ID))
	require.NoError(t, repo.DeleteTask(ctx, tasks[0].ID))
	after, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestPgRepository_EndToEnd(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := &repository.Task{Text: "Buy milk"}
	require.NoError(t, repo.CreateTask(ctx, task))
	assert.Equal(t, int64(1), task.ID)

	require.NoError(t, repo.ToggleTask(ctx, task.ID))
	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*repository.Task{{ID: 1, Text: "Buy milk", Completed: true}}, tasks)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
