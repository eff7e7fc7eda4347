package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/config"
	_ "github.com/mattn/go-sqlite3"
)

// New opens the users/logs store as a local sqlite database. Turso (libsql://)
// URLs would need the libsql driver, which is not bundled; rejecting them up
// front beats the opaque "unknown driver" failure out of sql.Open. The
// database.auth_token config setting only applies once that driver is wired in.
func New(cfg config.DatabaseConfig) (*sql.DB, error) {
	if strings.HasPrefix(cfg.URL, "libsql://") {
		return nil, fmt.Errorf("libsql driver not bundled, use a local sqlite file instead of %q", cfg.URL)
	}

	dsn := strings.TrimPrefix(cfg.URL, "file:")

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
