// Package migrations holds the vault schema as embedded goose migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var (
	// ErrMigration wraps every failure of Migrate.
	ErrMigration = errors.New("vault schema migration failed")

	errNilDB = errors.New("db is nil")
)

// Migrate brings the SQLite vault schema up to date. Applying it to an
// up-to-date file is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("%w: %w", ErrMigration, errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("%w: dialect: %w", ErrMigration, err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%w: %w", ErrMigration, err)
	}

	return nil
}
