package sqlite

import (
	"context"
	"database/sql"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

// dbtx is satisfied by *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// insert runs an INSERT and returns the new row id. op names the operation
// in the returned DatabaseError.
func insert(ctx context.Context, db dbtx, op, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewDatabaseError(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewDatabaseError(op, err)
	}
	return id, nil
}

// update runs an UPDATE or DELETE and returns the number of rows changed.
// Changing nothing is not an error.
func update(ctx context.Context, db dbtx, op, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewDatabaseError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError(op, err)
	}
	return n, nil
}

// rowScanner is the part of *sql.Row and *sql.Rows that scanTask needs
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTask reads the columns id_task, text, checked_task in that order.
func scanTask(row rowScanner) (*repository.Task, error) {
	var t repository.Task
	if err := row.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
		return nil, err
	}
	return &t, nil
}

// selectTasks runs query and scans every row with scanTask. The result is
// never nil.
func selectTasks(ctx context.Context, db dbtx, query string, args ...interface{}) ([]*repository.Task, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewDatabaseError("query tasks", err)
	}
	defer rows.Close()

	tasks := make([]*repository.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, errors.NewDatabaseError("scan tasks", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("scan tasks", err)
	}
	return tasks, nil
}
