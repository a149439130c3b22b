package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// iconFileStorage copies icon images into a private directory so that
// accounts keep working after the user moves or deletes the original file.
type iconFileStorage struct {
	dir    string
	names  *utils.UUIDGenerator
	logger *logger.Logger
}

// NewIconFileStorage returns an [IconFileStorage] rooted at dir. The
// directory is created lazily on first import.
func NewIconFileStorage(dir string, logger *logger.Logger) IconFileStorage {
	return &iconFileStorage{
		dir:    dir,
		names:  utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *iconFileStorage) Import(ctx context.Context, srcPath string) (string, error) {
	log := logger.FromContext(ctx)

	src, err := os.Open(srcPath)
	if err != nil {
		log.Err(err).Str("func", "iconFileStorage.Import").Str("src", srcPath).Msg("error opening icon")
		return "", fmt.Errorf("error opening icon: %w", err)
	}
	defer src.Close()

	if err = os.MkdirAll(s.dir, 0o700); err != nil {
		log.Err(err).Str("func", "iconFileStorage.Import").Msg("error creating icons directory")
		return "", fmt.Errorf("error creating icons directory: %w", err)
	}

	dstPath := filepath.Join(s.dir, s.names.FileName(strings.ToLower(filepath.Ext(srcPath))))
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		log.Err(err).Str("func", "iconFileStorage.Import").Str("dst", dstPath).Msg("error creating icon copy")
		return "", fmt.Errorf("error creating icon copy: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		log.Err(err).Str("func", "iconFileStorage.Import").Str("dst", dstPath).Msg("error copying icon")
		return "", fmt.Errorf("error copying icon: %w", err)
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("error closing icon copy: %w", err)
	}

	return dstPath, nil
}

func (s *iconFileStorage) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *iconFileStorage) Remove(path string) error {
	if path == "" {
		return nil
	}

	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s", ErrIconOutsideStore, path)
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Err(err).Str("func", "iconFileStorage.Remove").Str("path", path).Msg("error removing icon")
		return fmt.Errorf("error removing icon: %w", err)
	}
	return nil
}
