package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
var (
	// ErrInvalidStorageConfigs indicates missing or unusable storage paths
	// (for example, an in-memory database).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, no log file).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
