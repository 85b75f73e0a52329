// Package sqlite implements store.TaskStore on SQLite through the pure Go
// modernc.org/sqlite driver. It backs local runs and the test suites.
package sqlite
