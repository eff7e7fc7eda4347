package database

import "database/sql"

// Store wraps the shared connection handle so handlers that only need a ping
// (health checks) don't take a dependency on the repositories.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}
