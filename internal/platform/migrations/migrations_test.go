package migrations_test

import (
	"context"
	"testing"

	"github.com/phrazzld/todo-api/internal/platform/migrations"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UpDownSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	countTables := func() int {
		var n int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&n))
		return n
	}

	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "up"))
	assert.Equal(t, 1, countTables())

	// Running up twice is a no-op.
	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "up"))

	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "status"))
	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "version"))

	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "down"))
	assert.Equal(t, 0, countTables())
}

func TestRun_SchemaRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, migrations.Run(ctx, db, migrations.DialectSQLite, "up"))

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (text) VALUES ('  ')`)
	assert.Error(t, err, "check constraint must reject whitespace-only text")

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (text) VALUES ('ok')`)
	require.NoError(t, err)

	var completed bool
	require.NoError(t, db.QueryRowContext(ctx, `SELECT completed FROM tasks`).Scan(&completed))
	assert.False(t, completed)
}

func TestRun_UnknownCommand(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = migrations.Run(ctx, db, migrations.DialectSQLite, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestDialectForDriver(t *testing.T) {
	tests := []struct {
		driver  string
		want    migrations.Dialect
		wantErr bool
	}{
		{driver: "postgres", want: migrations.DialectPostgres},
		{driver: "sqlite", want: migrations.DialectSQLite},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := migrations.DialectForDriver(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
