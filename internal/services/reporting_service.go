package services

import (
	"context"

	"todo-list/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService) ReportingService {
	return &reportingServiceImpl{taskService: taskService}
}

// GetSummary loads the task list and counts it
func (r *reportingServiceImpl) GetSummary(ctx context.Context) (*TaskSummary, error) {
	tasks, err := r.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return r.Summarize(tasks), nil
}

// Summarize counts the given tasks by completion state
func (r *reportingServiceImpl) Summarize(tasks []*domain.Task) *TaskSummary {
	summary := &TaskSummary{}
	for _, task := range tasks {
		if task == nil {
			continue
		}
		summary.Total++
		if task.Completed {
			summary.Completed++
		} else {
			summary.Pending++
		}
	}
	return summary
}
