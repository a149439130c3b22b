// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DBPath == "" || cfg.Storage.IconsDir == "" {
		return ErrInvalidStorageConfigs
	}

	// the vault is reopened for every operation, an in-memory database
	// would lose everything between calls
	if cfg.Storage.DBPath == ":memory:" || strings.Contains(cfg.Storage.DBPath, "mode=memory") {
		return fmt.Errorf("%w: in-memory database is not supported", ErrInvalidStorageConfigs)
	}

	if cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	return nil
}
