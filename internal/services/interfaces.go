package services

import (
	"context"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/repository"
)

// TaskSummary counts tasks by completion state
type TaskSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// TaskService handles the task lifecycle between the store and the frontends
type TaskService interface {
	// Input rules
	ValidateText(text string) error
	MaxTextLength() int

	// Task operations
	CreateTask(ctx context.Context, text string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ToggleTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}

// ReportingService summarizes the task list
type ReportingService interface {
	GetSummary(ctx context.Context) (*TaskSummary, error)
	Summarize(tasks []*domain.Task) *TaskSummary
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
}

// NewServiceContainer wires the services around a single repository
func NewServiceContainer(repo repository.Repository, cfg *config.Config) *ServiceContainer {
	taskService := NewTaskServiceWithConfig(repo, cfg)
	return &ServiceContainer{
		TaskService:      taskService,
		ReportingService: NewReportingService(taskService),
	}
}
