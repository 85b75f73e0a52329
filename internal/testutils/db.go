package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/migrations"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// NewSQLiteDB opens a private in-memory SQLite database with the tasks
// schema applied. It is closed through t.Cleanup.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err, "failed to open in-memory sqlite database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "up"),
		"failed to migrate test database")
	return db
}

// MustInsertTask inserts a task row directly, bypassing stores and caches.
func MustInsertTask(t *testing.T, db *sql.DB, text string, completed bool) domain.Task {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (text, completed) VALUES (?, ?)`, text, completed)
	require.NoError(t, err, "failed to insert task")

	id, err := result.LastInsertId()
	require.NoError(t, err)

	return domain.Task{ID: id, Text: text, Completed: completed}
}

// CountTasks returns the number of rows in the tasks table.
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM tasks`).Scan(&n))
	return n
}

// UpdateTaskRow changes a row directly, for simulating writers that bypass
// the service and its cache.
func UpdateTaskRow(t *testing.T, db *sql.DB, id int64, text string, completed bool) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`UPDATE tasks SET text = ?, completed = ? WHERE id = ?`, text, completed, id)
	require.NoError(t, err)
}
