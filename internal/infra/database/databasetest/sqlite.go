// Package databasetest opens throwaway sqlite databases holding the todos table.
package databasetest

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"todo-api/internal/infra/database"
	"todo-api/internal/infra/database/sqldb"
)

const todosTable = `CREATE TABLE todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description VARCHAR(255) NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT 0
)`

// NewSQLite returns an in-memory sqlite database with an empty todos table, closed when the test ends
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sqldb.Open(database.Config{Client: database.ClientSQL, Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(todosTable)
	require.NoError(t, err)
	return db
}
