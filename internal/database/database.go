package database

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection shared by both record managers.
type DB struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// New creates a new database connection
func New(path string) (*DB, error) {
	// SQLite connection with WAL mode; foreign keys enforced
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single interactive user; one open connection is plenty
	conn.SetMaxOpenConns(1)

	log.Debug().Str("path", path).Msg("Database connection established")

	return &DB{
		conn: conn,
		path: path,
	}, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// IsEmpty reports whether no bands exist yet (used for the first-run greeting)
func (db *DB) IsEmpty() (bool, error) {
	var count int
	err := db.queryRow("SELECT COUNT(*) FROM bands").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check bands: %w", err)
	}
	return count == 0, nil
}

// Transaction wraps a function in a database transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
