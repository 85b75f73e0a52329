package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// SQLiteTaskStore implements store.TaskStore on SQLite.
type SQLiteTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// NewSQLiteTaskStore creates a TaskStore on db, which may be a *sql.DB or a
// *sql.Tx. If logger is nil, the default logger is used.
func NewSQLiteTaskStore(db store.DBTX, logger *slog.Logger) *SQLiteTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (text, completed) VALUES (?, ?)`,
		task.Text, task.Completed)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return store.NewStoreError(store.OpCreate, "insert failed", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return store.NewStoreError(store.OpCreate, "last insert id unavailable", err)
	}
	task.ID = id

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return nil
}

func (s *SQLiteTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := s.db.QueryRowContext(ctx,
		`SELECT id, text, completed FROM tasks WHERE id = ?`, id).
		Scan(&task.ID, &task.Text, &task.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError(store.OpGet, "query failed", err)
	}
	return &task, nil
}

func (s *SQLiteTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, completed FROM tasks ORDER BY id`)
	if err != nil {
		return nil, store.NewStoreError(store.OpList, "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Text, &task.Completed); err != nil {
			return nil, store.NewStoreError(store.OpList, "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(store.OpList, "row iteration failed", err)
	}
	return tasks, nil
}

func (s *SQLiteTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET text = ?, completed = ? WHERE id = ?`,
		task.Text, task.Completed, task.ID)
	if err != nil {
		return store.NewStoreError(store.OpUpdate, "exec failed", err)
	}
	return checkRowsAffected(result, store.OpUpdate)
}

func (s *SQLiteTaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return store.NewStoreError(store.OpDelete, "exec failed", err)
	}
	return checkRowsAffected(result, store.OpDelete)
}

func (s *SQLiteTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &SQLiteTaskStore{db: tx, logger: s.logger}
}

func (s *SQLiteTaskStore) Ping(ctx context.Context) error {
	if p, ok := s.db.(store.Pinger); ok {
		return p.PingContext(ctx)
	}
	return nil
}

func checkRowsAffected(result sql.Result, op store.Operation) error {
	n, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError(op, "rows affected unavailable", err)
	}
	if n == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}
