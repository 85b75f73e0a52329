package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/store"
)

// SQLSTATE codes the tasks table can raise for a rejected row.
const (
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
)

var rejectedRowCodes = map[string]string{
	notNullViolationCode: "not null violation",
	checkViolationCode:   "check constraint violation",
}

// MapError translates driver errors into store sentinels, keeping the
// original error in the chain. Errors without a mapping are returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrTaskNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	kind, ok := rejectedRowCodes[pgErr.Code]
	if !ok {
		return err
	}

	object := pgErr.ConstraintName
	if object == "" {
		object = pgErr.ColumnName
	}
	return fmt.Errorf("%w: %s (%s): %v", store.ErrInvalidEntity, kind, object, err)
}

// CheckRowsAffected returns store.ErrTaskNotFound when an UPDATE or DELETE
// matched no row.
func CheckRowsAffected(result sql.Result) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}
