package sqlite

import (
	"context"
	"database/sql"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements repository.Repository on a single SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// New opens (creating if needed) the SQLite database at dbPath and brings its
// schema up to date. Use ":memory:" for a throwaway store.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}
	// one connection keeps :memory: databases a single store
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	logging.Debugf("opened sqlite task store at %s", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a new unchecked task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (text, checked_task) VALUES (?, ?)`
	id, err := insert(ctx, r.db, "insert task", query, task.Text, false)
	if err != nil {
		return err
	}
	task.ID = id
	task.Completed = false
	return nil
}

// ListTasks retrieves all tasks, most recently added first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	query := `SELECT id_task, text, checked_task FROM tasks ORDER BY id_task DESC`
	return selectTasks(ctx, r.db, query)
}

// ToggleTask negates the completion flag of a task
func (r *SQLiteRepository) ToggleTask(ctx context.Context, id int64) error {
	query := `UPDATE tasks SET checked_task = NOT checked_task WHERE id_task = ?`
	n, err := update(ctx, r.db, "toggle task", query, id)
	if err != nil {
		return err
	}
	if n == 0 {
		logging.Debugf("toggle: no task with id %d", id)
	}
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id_task = ?`
	n, err := update(ctx, r.db, "delete task", query, id)
	if err != nil {
		return err
	}
	if n == 0 {
		logging.Debugf("delete: no task with id %d", id)
	}
	return nil
}
