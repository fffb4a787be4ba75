package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	config "github.com/previewlabs/storekit-preview/api/config"
)

var db *sql.DB

// Initialize connects to the ledger database and verifies the connection.
// Only the stripe store mode needs a database; the preview gateway never
// calls into this package.
func Initialize() error {
	var err error
	dsn := withSimpleProtocol(config.AppConfig.DatabaseURL)
	db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open ledger database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Single connection: server-side prepared statements break under
	// PgBouncer transaction pooling, and the ledger sees little traffic.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return nil
}

// withSimpleProtocol forces lib/pq onto the simple query protocol unless the
// DSN already takes a position on it. Needed for PgBouncer-style poolers,
// harmless elsewhere. Non-URL DSNs are returned unchanged.
func withSimpleProtocol(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return dsn
	}
	q := u.Query()
	if q.Has("disable_prepared_statements") || q.Has("prefer_simple_protocol") {
		return dsn
	}
	q.Set("disable_prepared_statements", "true")
	if !q.Has("binary_parameters") {
		q.Set("binary_parameters", "yes")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}
