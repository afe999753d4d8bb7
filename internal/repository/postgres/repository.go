package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
)

// PgRepository is a PostgreSQL-backed task store.
type PgRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Repository = (*PgRepository)(nil)

// New connects to dsn and ensures the tasks table exists.
func New(ctx context.Context, dsn string) (*PgRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("postgres", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.NewStorageUnavailableError("postgres", err)
	}

	repo := NewWithPool(pool)
	if err := repo.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, errors.NewStorageUnavailableError("postgres", err)
	}

	logging.Debugf("opened postgres task store")
	return repo, nil
}

// NewWithPool wraps an existing pool. The caller is responsible for the table.
func NewWithPool(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// EnsureTable creates the tasks table if it doesn't exist.
func (r *PgRepository) EnsureTable(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			text         VARCHAR(50) NOT NULL,
			checked_task BOOLEAN NOT NULL DEFAULT FALSE,
			id_task      BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY
		)`)
	return err
}

// Close releases the pool.
func (r *PgRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateTask inserts a new unchecked task.
func (r *PgRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tasks (text, checked_task) VALUES ($1, FALSE) RETURNING id_task`,
		task.Text).Scan(&task.ID)
	if err != nil {
		return errors.NewDatabaseError("create task", err)
	}
	task.Completed = false
	return nil
}

// ListTasks returns all tasks, most recently added first.
func (r *PgRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT id_task, text, checked_task FROM tasks ORDER BY id_task DESC`)
	if err != nil {
		return nil, errors.NewDatabaseError("query tasks", err)
	}
	defer rows.Close()

	tasks := []*repository.Task{}
	for rows.Next() {
		var t repository.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
			return nil, errors.NewDatabaseError("scan tasks", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("scan tasks", err)
	}
	return tasks, nil
}

// ToggleTask negates the completion flag. Unknown ids are ignored.
func (r *PgRepository) ToggleTask(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tasks SET checked_task = NOT checked_task WHERE id_task = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("toggle task", err)
	}
	if tag.RowsAffected() == 0 {
		logging.Debugf("toggle: no task with id %d", id)
	}
	return nil
}

// DeleteTask removes a task. Unknown ids are ignored.
func (r *PgRepository) DeleteTask(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id_task = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("delete task", err)
	}
	if tag.RowsAffected() == 0 {
		logging.Debugf("delete: no task with id %d", id)
	}
	return nil
}
