package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/repository"
)

func openRawDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE tasks (text TEXT, checked_task BOOLEAN, id_task INTEGER PRIMARY KEY AUTOINCREMENT)`)
	require.NoError(t, err)
	return db
}

func TestInsert(t *testing.T) {
	db := openRawDB(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		id, err := insert(ctx, db, "insert task", `INSERT INTO tasks (text, checked_task) VALUES (?, 0)`, "t")
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	_, err := insert(ctx, db, "insert task", `INSERT INTO missing (text) VALUES (?)`, "x")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "insert task")
}

func TestUpdate(t *testing.T) {
	db := openRawDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO tasks (text, checked_task) VALUES ('a', 0), ('b', 0)`)
	require.NoError(t, err)

	tests := []struct {
		name        string
		query       string
		args        []interface{}
		expected    int64
		expectError bool
	}{
		{"one row", `UPDATE tasks SET checked_task = NOT checked_task WHERE id_task = ?`, []interface{}{1}, 1, false},
		{"no rows is not an error", `DELETE FROM tasks WHERE id_task = ?`, []interface{}{99}, 0, false},
		{"all rows", `UPDATE tasks SET text = 'y'`, nil, 2, false},
		{"bad query", `UPDATE nothing SET x = 1`, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := update(ctx, db, "update tasks", tt.query, tt.args...)
			if tt.expectError {
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestSelectTasks(t *testing.T) {
	db := openRawDB(t)
	ctx := context.Background()

	tasks, err := selectTasks(ctx, db, `SELECT id_task, text, checked_task FROM tasks`)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	_, err = db.Exec(`INSERT INTO tasks (text, checked_task, id_task) VALUES ('a', 0, 1), ('b', 1, 2)`)
	require.NoError(t, err)

	tasks, err = selectTasks(ctx, db, `SELECT id_task, text, checked_task FROM tasks ORDER BY id_task DESC`)
	require.NoError(t, err)
	assert.Equal(t, []*repository.Task{
		{ID: 2, Text: "b", Completed: true},
		{ID: 1, Text: "a", Completed: false},
	}, tasks)

	_, err = selectTasks(ctx, db, `SELECT * FROM missing`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query tasks")

	_, err = selectTasks(ctx, db, `SELECT id_task FROM tasks`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan tasks")
}

func TestScanTask_Row(t *testing.T) {
	db := openRawDB(t)

	_, err := db.Exec(`INSERT INTO tasks (text, checked_task) VALUES ('Buy milk', 1)`)
	require.NoError(t, err)

	task, err := scanTask(db.QueryRow(`SELECT id_task, text, checked_task FROM tasks WHERE id_task = 1`))
	require.NoError(t, err)
	assert.Equal(t, &repository.Task{ID: 1, Text: "Buy milk", Completed: true}, task)

	task, err = scanTask(db.QueryRow(`SELECT id_task, text, checked_task FROM tasks WHERE id_task = 5`))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, task)
}
