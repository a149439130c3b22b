// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// opener opens a fresh connection pool for dsn.
type opener func(dsn string) (*sql.DB, error)

// DB gives scoped access to the vault file. It never keeps a connection
// between calls: every unit of work opens the file, runs, and closes it on
// every exit path. Units of work are serialised with a mutex, so two
// goroutines never have the file open at the same time through one DB.
type DB struct {
	dsn    string
	open   opener
	mu     sync.Mutex
	logger *logger.Logger
}

func newDB(dsn string, open opener, log *logger.Logger) *DB {
	return &DB{
		dsn:    dsn,
		open:   open,
		logger: log,
	}
}

// Do runs fn against a freshly opened connection and closes it afterwards.
func (db *DB) Do(ctx context.Context, fn func(ctx context.Context, q DBTX) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	conn, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	return fn(ctx, conn)
}

// DoTx is like Do but runs fn inside a single transaction: either every
// statement fn executes is committed or none is.
func (db *DB) DoTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	conn, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	return withTx(ctx, conn, nil, fn)
}

// Migrate applies pending schema migrations to the vault file.
func (db *DB) Migrate(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	conn, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	return migrations.Migrate(ctx, conn)
}

func (db *DB) acquire(ctx context.Context) (*sql.DB, error) {
	conn, err := db.open(db.dsn)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.acquire").Msg("error opening vault database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	// one writer, one connection: the file is never shared inside a unit of work
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		db.logger.Err(err).Str("func", "DB.acquire").Msg("error connecting vault database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	return conn, nil
}

func (db *DB) release(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		db.logger.Warn().Err(err).Str("func", "DB.release").Msg("error closing vault database")
	}
}
