package service

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskRepository is the persistence contract the task service depends on.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error

	// WithTx returns a repository bound to tx.
	WithTx(tx *sql.Tx) TaskRepository

	// DB returns the connection pool transactions are started on.
	DB() *sql.DB
}

// NewTaskRepositoryAdapter creates a new adapter that allows a
// store.TaskStore to be used where a TaskRepository is expected.
func NewTaskRepositoryAdapter(taskStore store.TaskStore, db *sql.DB) TaskRepository {
	return &taskRepositoryAdapter{
		taskStore: taskStore,
		db:        db,
	}
}

type taskRepositoryAdapter struct {
	taskStore store.TaskStore
	db        *sql.DB
}

func (a *taskRepositoryAdapter) Create(ctx context.Context, task *domain.Task) error {
	return a.taskStore.Create(ctx, task)
}

func (a *taskRepositoryAdapter) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return a.taskStore.GetByID(ctx, id)
}

func (a *taskRepositoryAdapter) List(ctx context.Context) ([]domain.Task, error) {
	return a.taskStore.List(ctx)
}

func (a *taskRepositoryAdapter) Update(ctx context.Context, task *domain.Task) error {
	return a.taskStore.Update(ctx, task)
}

func (a *taskRepositoryAdapter) Delete(ctx context.Context, id int64) error {
	return a.taskStore.Delete(ctx, id)
}

// WithTx implements TaskRepository.WithTx
func (a *taskRepositoryAdapter) WithTx(tx *sql.Tx) TaskRepository {
	return &taskRepositoryAdapter{
		taskStore: a.taskStore.WithTx(tx),
		db:        a.db,
	}
}

// DB implements TaskRepository.DB
func (a *taskRepositoryAdapter) DB() *sql.DB {
	return a.db
}
