// Package testutils provides database helpers shared by the test suites.
//
// Tests run against an in-memory SQLite database migrated with the same
// embedded migrations the server uses, so store, service and router tests
// exercise real SQL without an external database:
//
//	func TestSomething(t *testing.T) {
//	    db := testutils.NewSQLiteDB(t)
//	    taskStore := sqlite.NewSQLiteTaskStore(db, nil)
//	    task := testutils.MustInsertTask(t, db, "Buy milk", false)
//	    ...
//	}
//
// The database is closed automatically when the test finishes.
package testutils
