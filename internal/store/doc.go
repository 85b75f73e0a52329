// Package store defines the persistence contract for task records and the
// errors and transaction helpers shared by every driver implementation.
// Drivers live under internal/platform.
package store
