package controller

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/services"
)

// Controller owns the task list presentation and turns user intents into
// service calls. It is not safe for concurrent use.
type Controller struct {
	service    services.TaskService
	view       View
	rows       []Row
	inputState InputState
}

// New creates a controller driving view
func New(service services.TaskService, view View) *Controller {
	return &Controller{
		service: service,
		view:    view,
	}
}

// AddTask handles a submission from the task entry. Blank input only changes
// the entry state. Input over the maximum length changes the entry state and
// returns the validation error. Otherwise the entry is cleared, the task
// stored and the list rebuilt.
func (c *Controller) AddTask(ctx context.Context, input string) error {
	if err := c.service.ValidateText(input); err != nil {
		switch {
		case errors.IsErrorType(err, errors.ErrorTypeEmptyInput):
			c.setInputState(InputEmpty)
			return nil
		case errors.IsErrorType(err, errors.ErrorTypeValidation):
			c.setInputState(InputTooLong)
			return err
		default:
			return err
		}
	}

	c.view.ClearInput()
	c.setInputState(InputNormal)

	task, err := c.service.CreateTask(ctx, input)
	if err != nil {
		return err
	}
	logging.Debugf("added task %d", task.ID)

	return c.RefreshList(ctx)
}

// RefreshList rebuilds every row from storage, newest first
func (c *Controller) RefreshList(ctx context.Context) error {
	tasks, err := c.service.ListTasks(ctx)
	if err != nil {
		return err
	}

	c.rows = c.rows[:0]
	c.view.ClearRows()
	for _, task := range tasks {
		row := RenderRow(*task)
		c.rows = append(c.rows, row)
		c.view.AppendRow(row)
	}
	logging.Debugf("list refreshed with %d rows", len(c.rows))
	return nil
}

// ToggleTask flips a task's completion in storage and updates its row in
// place without reloading the list.
func (c *Controller) ToggleTask(ctx context.Context, id int64) error {
	if err := c.service.ToggleTask(ctx, id); err != nil {
		return err
	}

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}

	row := c.rows[i]
	row.Completed = !row.Completed
	if row.Completed {
		row.Display = domain.StrikeThrough(row.Display)
	} else {
		row.Display = domain.ClearStrike(row.Display)
	}
	c.rows[i] = row
	c.view.UpdateRow(row)
	return nil
}

// DeleteTask removes the row immediately, then deletes the task from
// storage. The row is not restored if storage fails.
func (c *Controller) DeleteTask(ctx context.Context, id int64) error {
	if i := c.indexOf(id); i >= 0 {
		c.rows = append(c.rows[:i], c.rows[i+1:]...)
	}
	c.view.RemoveRow(id)

	return c.service.DeleteTask(ctx, id)
}

// Rows returns a copy of the current presentation rows
func (c *Controller) Rows() []Row {
	rows := make([]Row, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// InputState returns the current task entry state
func (c *Controller) InputState() InputState {
	return c.inputState
}

// MaxTextLength returns the longest text the entry should accept
func (c *Controller) MaxTextLength() int {
	return c.service.MaxTextLength()
}

func (c *Controller) setInputState(state InputState) {
	c.inputState = state
	c.view.SetInputState(state)
}

func (c *Controller) indexOf(id int64) int {
	for i, row := range c.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}
