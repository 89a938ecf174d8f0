package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/logger"
)

// dbOps is satisfied by both *sqlx.DB and *sqlx.Tx.
type dbOps interface {
	sqlx.Ext
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}

// DB is the single embedded catalog store. It is opened once per process
// and must be closed on every exit path. Inside RunInTx the same methods
// run against the transaction.
type DB struct {
	dbOps
	root *sqlx.DB
	inTx bool
	log  *logger.Logger
}

func NewSQLiteDB(dsn string, log *logger.Logger) (*DB, error) {
	if err := ensureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// One connection: pragmas are per connection and there is a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if log == nil {
		log = logger.Discard()
	}
	store := &DB{dbOps: db, root: db, log: log.WithComponent("store")}

	if err := store.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// EnsureSchema creates all catalog tables that do not exist yet.
// It is safe to call on every start.
func (db *DB) EnsureSchema() error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// RunInTx runs fn against a transaction that commits when fn returns nil.
// Nested calls join the outer transaction; the store holds a single
// connection, so a second one would block forever.
func (db *DB) RunInTx(ctx context.Context, fn func(txDB *DB) error) error {
	if db.inTx {
		return fn(db)
	}

	tx, err := db.root.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txDB := &DB{dbOps: tx, root: db.root, inTx: true, log: db.log}
	if err := fn(txDB); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ensureParentDir creates the directory holding a file-backed database.
// In-memory and URI DSNs are left alone.
func ensureParentDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.root.Close()
}
