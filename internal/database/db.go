// Package database opens and maintains the embedded SQLite store that
// holds report history.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Config holds database settings.
type Config struct {
	Path string
	Name string // used in error and log messages
}

// DB wraps one SQLite handle.
type DB struct {
	conn *sql.DB
	name string
	path string
}

// New opens the SQLite database at cfg.Path, creating the file and its
// directory when necessary. WAL journaling with a single writer
// connection suits the one long-lived monitor process this store serves.
func New(cfg Config) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	absPath, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connString := absPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)"

	conn, err := sql.Open("sqlite", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return &DB{conn: conn, name: cfg.Name, path: absPath}, nil
}

// Conn exposes the underlying handle for repositories.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Name returns the configured database name.
func (db *DB) Name() string {
	return db.name
}

// Close closes the underlying handle.
func (db *DB) Close() error {
	return db.conn.Close()
}

// HealthCheck runs a full integrity check. Expensive on large files.
func (db *DB) HealthCheck(ctx context.Context) error {
	var result string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("integrity check failed on %s: %w", db.name, err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check on %s returned %q", db.name, result)
	}
	return nil
}

// QuickCheck runs the cheaper consistency check, suitable for periodic
// monitoring.
func (db *DB) QuickCheck(ctx context.Context) error {
	var result string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		return fmt.Errorf("quick check failed on %s: %w", db.name, err)
	}
	if result != "ok" {
		return fmt.Errorf("quick check on %s returned %q", db.name, result)
	}
	return nil
}
