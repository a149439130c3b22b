// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// Default file layout inside the data directory.
const (
	AppDirName      = "PasswordManager"
	DBFileName      = "passwords.db"
	IconsDirName    = "Icons"
	LogsDirName     = "logs"
	LogFileName     = "vault.log"
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration of the vault. It is
// populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with VAULT_.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_" json:"app"`

	// Storage tells where the vault keeps its files.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the VAULT_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: VAULT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// LogFile is where the log is written. The UI owns the terminal, so
	// logs never go to stdout.
	// Env: VAULT_APP_LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file"`

	// AskPassphrase prompts for the master passphrase on start-up instead
	// of using the built-in one.
	// Env: VAULT_APP_ASK_PASSPHRASE
	AskPassphrase bool `env:"ASK_PASSPHRASE" json:"ask_passphrase"`
}

// Storage tells where the vault keeps its files.
type Storage struct {
	// DataDir is the per-user application data directory. DBPath, IconsDir
	// and App.LogFile default to locations inside it.
	// Env: VAULT_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR" json:"data_dir"`

	// DBPath is the vault database file.
	// Env: VAULT_STORAGE_DB_PATH
	DBPath string `env:"DB_PATH" json:"db_path"`

	// IconsDir receives copies of imported icon images.
	// Env: VAULT_STORAGE_ICONS_DIR
	IconsDir string `env:"ICONS_DIR" json:"icons_dir"`
}

// GetVaultConfig loads, merges, and validates the configuration using the
// process arguments. See [Load].
func GetVaultConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load loads, merges, and validates the configuration from all available
// sources. For every field the first source that sets it wins:
//  1. Command-line flags (args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Paths that are still empty afterwards are derived from Storage.DataDir.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// resolvePaths fills file locations that no source has set with their
// defaults inside the data directory.
func (cfg *StructuredConfig) resolvePaths() {
	if cfg.Storage.DataDir == "" {
		return
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(cfg.Storage.DataDir, DBFileName)
	}
	if cfg.Storage.IconsDir == "" {
		cfg.Storage.IconsDir = filepath.Join(cfg.Storage.DataDir, IconsDirName)
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(cfg.Storage.DataDir, LogsDirName, LogFileName)
	}
}
