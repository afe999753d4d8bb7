package domain

import (
	"todo-list/internal/repository"
)

// TaskMapper handles conversion between domain and storage Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a storage Task.
func (m *TaskMapper) ToDatabase(domainTask Task) repository.Task {
	return repository.Task{
		ID:        domainTask.ID,
		Text:      domainTask.Text,
		Completed: domainTask.Completed,
	}
}

// FromDatabase converts a storage Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask repository.Task) Task {
	return Task{
		ID:        dbTask.ID,
		Text:      dbTask.Text,
		Completed: dbTask.Completed,
	}
}

// FromDatabaseSlice converts storage Tasks to domain Tasks, keeping order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*repository.Task) []*Task {
	domainTasks := make([]*Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		if dbTask == nil {
			continue
		}
		task := m.FromDatabase(*dbTask)
		domainTasks = append(domainTasks, &task)
	}
	return domainTasks
}
