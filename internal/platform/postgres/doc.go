// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It talks to the database through database/sql using the pgx stdlib driver
// and maps PostgreSQL error codes onto the store package's sentinel errors.
package postgres
