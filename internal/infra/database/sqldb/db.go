package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"todo-api/internal/infra/database"
)

// Open connects through database/sql with lib/pq (postgres) or modernc (sqlite) and pings the database
func Open(config database.Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch config.Driver {
	case database.DriverPostgres:
		db, err = sql.Open("postgres", config.PostgresDSN())
	case database.DriverSQLite:
		db, err = openSQLite(config.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	database.ApplyPool(db, config)
	if config.Driver == database.DriverSQLite {
		// sqlite allows a single writer, and every :memory: connection is a separate database
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path != ":memory:" {
		if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
