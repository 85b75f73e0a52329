package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresTaskStore(db, nil), mock
}

func TestNewPostgresTaskStore_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgresTaskStore(nil, nil)
	})
}

func TestPostgresTaskStore_Create(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO tasks \(text, completed\)`).
		WithArgs("Buy milk", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	task := &domain.Task{Text: "Buy milk"}
	require.NoError(t, s.Create(context.Background(), task))
	assert.Equal(t, int64(42), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_Create_RejectsBlankText(t *testing.T) {
	s, mock := newMockStore(t)

	err := s.Create(context.Background(), &domain.Task{Text: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query may run for invalid input")
}

func TestPostgresTaskStore_Create_NotNullViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO tasks`).
		WillReturnError(&pgconn.PgError{Code: notNullViolationCode, ColumnName: "text"})

	err := s.Create(context.Background(), &domain.Task{Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, store.OpCreate, storeErr.Operation)
}

func TestPostgresTaskStore_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT id, text, completed\s+FROM tasks\s+WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "completed"}).
				AddRow(int64(7), "Write report", true))

		task, err := s.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, &domain.Task{ID: 7, Text: "Write report", Completed: true}, task)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`FROM tasks`).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

		task, err := s.GetByID(context.Background(), 8)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("connection_error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`FROM tasks`).WillReturnError(errors.New("connection refused"))

		_, err := s.GetByID(context.Background(), 9)
		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestPostgresTaskStore_List(t *testing.T) {
	t.Run("ordered_rows", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "completed"}).
				AddRow(int64(1), "a", false).
				AddRow(int64(2), "b", true))

		tasks, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Task{
			{ID: 1, Text: "a"},
			{ID: 2, Text: "b", Completed: true},
		}, tasks)
	})

	t.Run("empty_is_not_nil", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "completed"}))

		tasks, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestPostgresTaskStore_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(`UPDATE tasks\s+SET text = \$1, completed = \$2\s+WHERE id = \$3`).
			WithArgs("Buy milk", true, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Update(context.Background(), &domain.Task{ID: 3, Text: "Buy milk", Completed: true})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_row", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(`UPDATE tasks`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(context.Background(), &domain.Task{ID: 4, Text: "x"})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(context.Background(), 5))
	})

	t.Run("missing_row", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(`DELETE FROM tasks`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(context.Background(), 6), store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM tasks`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewPostgresTaskStore(db, nil)
	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Delete(ctx, 1)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no_rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "check_violation", err: &pgconn.PgError{Code: checkViolationCode}, wantIs: store.ErrInvalidEntity},
		{name: "not_null_violation", err: &pgconn.PgError{Code: notNullViolationCode}, wantIs: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}

	t.Run("unmapped_passthrough", func(t *testing.T) {
		orig := errors.New("boom")
		assert.Equal(t, orig, MapError(orig))

		unique := &pgconn.PgError{Code: "23505"}
		assert.Equal(t, error(unique), MapError(unique))
	})

	t.Run("names_the_constraint", func(t *testing.T) {
		err := MapError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_text_check"})
		assert.Contains(t, err.Error(), "check constraint violation (tasks_text_check)")
	})
}
