package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create inserts a new task and sets task.ID to the id assigned by the
	// database. Returns domain validation errors if the task is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns every task ordered by id.
	// Returns an empty slice when there are no tasks.
	List(ctx context.Context) ([]domain.Task, error)

	// Update saves the text and completed fields of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore bound to tx. The transaction is owned by
	// the caller.
	WithTx(tx *sql.Tx) TaskStore

	// Ping verifies the underlying database connection.
	Ping(ctx context.Context) error
}
