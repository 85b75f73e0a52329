package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/cache"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskService provides the task list operations exposed over HTTP.
type TaskService interface {
	// ListTasks returns every task ordered by id.
	ListTasks(ctx context.Context) ([]domain.Task, Provenance, error)

	// GetTask returns the task with the given id, or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, Provenance, error)

	// CreateTask validates and stores a new task. Blank text yields a
	// domain.ValidationError and the store is not touched.
	CreateTask(ctx context.Context, text string, completed bool) (*domain.Task, error)

	// UpdateTask applies changes to an existing task. Blank text keeps the
	// current text; Completed is always replaced.
	UpdateTask(ctx context.Context, id int64, changes domain.TaskChanges) (*domain.Task, error)

	// DeleteTask removes the task with the given id, or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo   TaskRepository
	cache  cache.Cache
	sync   *cacheSync
	opts   Options
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	repo TaskRepository,
	c cache.Cache,
	opts Options,
	logger *slog.Logger,
) (TaskService, error) {
	if repo == nil {
		return nil, domain.NewValidationError("repo", "cannot be nil", domain.ErrValidation)
	}
	if c == nil {
		return nil, domain.NewValidationError("cache", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "task_service"))

	opts = opts.withDefaults()

	return &taskServiceImpl{
		repo:   repo,
		cache:  c,
		sync:   newCacheSync(c, opts, logger),
		opts:   opts,
		logger: logger,
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, Provenance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	key := cache.CollectionKey()

	if tasks, ok := readThrough[[]domain.Task](ctx, s, key); ok {
		log.Debug("task list served from cache", slog.Int("count", len(tasks)))
		return tasks, ProvenanceCache, nil
	}

	tasks, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, "", NewTaskServiceError("list", "failed to load tasks", err)
	}

	s.populate(ctx, key, tasks)

	return tasks, ProvenanceDatabase, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, Provenance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))
	key := cache.ItemKey(id)

	if task, ok := readThrough[domain.Task](ctx, s, key); ok {
		log.Debug("task served from cache")
		return &task, ProvenanceCache, nil
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found")
			return nil, "", ErrTaskNotFound
		}
		log.Error("failed to get task", slog.String("error", err.Error()))
		return nil, "", NewTaskServiceError("get", "failed to load task", err)
	}

	s.populate(ctx, key, task)

	return task, ProvenanceDatabase, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, text string, completed bool) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(text, completed)
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create", "failed to store task", err)
	}

	log.Info("task created", slog.Int64("task_id", task.ID))

	s.sync.invalidateCollection(ctx)
	s.sync.refreshItem(ctx, task)

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	changes domain.TaskChanges,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)

		task, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		task.Apply(changes)

		if err := txRepo.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update")
			return nil, ErrTaskNotFound
		}
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to update task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("update", "failed to update task", err)
	}

	log.Info("task updated", slog.Bool("completed", updated.Completed))

	s.sync.invalidateCollection(ctx)
	s.sync.refreshItem(ctx, updated)

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	err := store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)

		if _, err := txRepo.GetByID(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete")
			return ErrTaskNotFound
		}
		log.Error("failed to delete task", slog.String("error", err.Error()))
		return NewTaskServiceError("delete", "failed to delete task", err)
	}

	log.Info("task deleted")

	s.sync.invalidateCollection(ctx)
	s.sync.invalidateItem(ctx, id)

	return nil
}

// readThrough looks key up in the cache. Any failure, including an entry
// that no longer decodes, is reported as a miss.
func readThrough[T any](ctx context.Context, s *taskServiceImpl, key string) (T, bool) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cctx, cancel := context.WithTimeout(ctx, s.opts.OperationTimeout)
	defer cancel()

	value, err := cache.GetJSON[T](cctx, s.cache, key)
	switch {
	case err == nil:
		return value, true
	case errors.Is(err, cache.ErrMiss):
		log.Debug("cache miss", slog.String("key", key))
	default:
		log.Warn("cache read failed, falling back to store",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	var zero T
	return zero, false
}

// populate writes a store result back to the cache with the default TTL.
func (s *taskServiceImpl) populate(ctx context.Context, key string, value any) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.OperationTimeout)
	defer cancel()

	if err := cache.SetJSON(cctx, s.cache, key, value, 0); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to populate cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
