package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context) ([]domain.Task, service.Provenance, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, service.Provenance, error)
	CreateTaskFn func(ctx context.Context, text string, completed bool) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, changes domain.TaskChanges) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error

	// Default return values
	Task         *domain.Task
	Tasks        []domain.Task
	Provenance   service.Provenance
	DefaultError error
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, service.Provenance, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.provenance(), m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, service.Provenance, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.provenance(), m.DefaultError
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, text string, completed bool) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, text, completed)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id int64,
	changes domain.TaskChanges,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, changes)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

func (m *MockTaskService) provenance() service.Provenance {
	if m.Provenance == "" {
		return service.ProvenanceDatabase
	}
	return m.Provenance
}
