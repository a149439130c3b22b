package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// newTestStorages creates a vault file in a per-test temporary directory.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Storage{
		DataDir:  dir,
		DBPath:   filepath.Join(dir, "passwords.db"),
		IconsDir: filepath.Join(dir, "Icons"),
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	return s
}
