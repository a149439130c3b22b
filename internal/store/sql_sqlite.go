package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sqliteDriverName is the go-sqlite3 driver registered with the vault's
// custom SQL functions.
const sqliteDriverName = "sqlite3_vault"

var registerDriverOnce sync.Once

// registerSQLiteDriver registers go-sqlite3 under [sqliteDriverName] with a
// connect hook that installs vault_lower, a Unicode-aware lower(). SQLite's
// built-in lower() only folds ASCII.
func registerSQLiteDriver() {
	registerDriverOnce.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("vault_lower", strings.ToLower, true)
			},
		})
	})
}

// NewSQLiteDB prepares the vault file described by cfg: it creates the
// parent directory and the file if needed, and runs schema migrations once.
// The returned DB opens the file again for every unit of work.
func NewSQLiteDB(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DBPath); err != nil {
		log.Err(err).Str("func", "NewSQLiteDB").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	registerSQLiteDriver()

	db := newDB(sqliteDSN(cfg.DBPath), func(dsn string) (*sql.DB, error) {
		return sql.Open(sqliteDriverName, dsn)
	}, log)

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteDB").Msg("error migrating database")
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteDB").Str("path", cfg.DBPath).Msg("vault database is ready")

	return db, nil
}

// sqliteDSN appends connection parameters to path. Write transactions take
// the file lock up front so that a second process waits instead of failing
// half-way through a cascade.
func sqliteDSN(path string) string {
	return path + "?_busy_timeout=5000&_txlock=immediate"
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_RDWR, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
