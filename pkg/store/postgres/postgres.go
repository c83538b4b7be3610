package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type Settings struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// NewDB opens a connection pool against the console's relational store.
// The schema is owned by the admin console's CRUD layer; reporting only
// reads from it.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if settings.MaxOpenConns > 0 {
		db.SetMaxOpenConns(settings.MaxOpenConns)
	}
	if settings.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(settings.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
