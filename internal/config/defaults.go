package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// defaultConfig returns the built-in defaults: the per-user application data
// directory and the default log level.
func defaultConfig() (*StructuredConfig, error) {
	base, err := userConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user data directory: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DataDir: filepath.Join(base, AppDirName),
		},
	}, nil
}
