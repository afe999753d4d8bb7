package services

import (
	"context"
	"fmt"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance with default limits
func NewTaskService(repo repository.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewTaskServiceWithConfig creates a TaskService using configured limits
func NewTaskServiceWithConfig(repo repository.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// ValidateText checks task text without storing it. Blank text yields an
// EmptyInput error, overlong text a Validation error.
func (t *taskServiceImpl) ValidateText(text string) error {
	err := t.taskValidator.ValidateText(text)
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		if validationErr.HasErrorType(validation.ErrorTypeRequired) {
			return errors.NewEmptyInputError("text")
		}
		return errors.NewValidationError(validationErr.GetUserFriendlyMessage(), validationErr).
			WithContext("max_length", t.taskValidator.MaxTextLength())
	}
	return errors.NewValidationError("invalid task text", err)
}

// MaxTextLength returns the longest accepted task text in characters
func (t *taskServiceImpl) MaxTextLength() int {
	return t.taskValidator.MaxTextLength()
}

// CreateTask stores a new unchecked task. The text is stored exactly as given.
func (t *taskServiceImpl) CreateTask(ctx context.Context, text string) (*domain.Task, error) {
	if err := t.ValidateText(text); err != nil {
		return nil, err
	}

	dbTask := t.mapper.ToDatabase(domain.NewTask(text))
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	logging.Debugf("created task %d", dbTask.ID)

	domainTask := t.mapper.FromDatabase(dbTask)
	return &domainTask, nil
}

// ListTasks returns every task, newest first
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.FromDatabaseSlice(dbTasks), nil
}

// ToggleTask flips a task's completion flag. Unknown and non-positive ids
// are ignored.
func (t *taskServiceImpl) ToggleTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		logging.Debugf("toggle ignored: %v", err)
		return nil
	}
	if err := t.repo.ToggleTask(ctx, id); err != nil {
		return storeError(err, "toggle task", id)
	}
	return nil
}

// DeleteTask removes a task. Unknown and non-positive ids are ignored.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		logging.Debugf("delete ignored: %v", err)
		return nil
	}
	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return storeError(err, "delete task", id)
	}
	return nil
}

// storeError tags a store failure with the task id. Errors that are not yet
// AppErrors are wrapped as database errors.
func storeError(err error, operation string, id int64) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.WithContext("task_id", id)
	}
	return errors.WrapError(err, errors.ErrorTypeDatabase, fmt.Sprintf("%s %d", operation, id)).
		WithContext("task_id", id)
}
