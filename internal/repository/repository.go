package repository

import "context"

// Task is a persisted row of the tasks table
type Task struct {
	ID        int64
	Text      string
	Completed bool
}

// Repository defines the interface for task storage operations
type Repository interface {
	// CreateTask inserts a new, unchecked task and sets task.ID
	CreateTask(ctx context.Context, task *Task) error

	// ListTasks returns every task, newest first
	ListTasks(ctx context.Context) ([]*Task, error)

	// ToggleTask flips the completion flag. A missing id is not an error.
	ToggleTask(ctx context.Context, id int64) error

	// DeleteTask removes the task. Deleting a missing id is not an error.
	DeleteTask(ctx context.Context, id int64) error

	Close() error
}
