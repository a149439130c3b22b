package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups every persistence component of the vault.
type Storages struct {
	Accounts   AccountRepository
	Categories CategoryRepository
	Icons      IconFileStorage
}

// NewStorages prepares the vault file at cfg.DBPath and wires the
// repositories and the icon store on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewSQLiteDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Accounts:   NewAccountRepository(db, logger),
		Categories: NewCategoryRepository(db, logger),
		Icons:      NewIconFileStorage(cfg.IconsDir, logger),
	}, nil
}
