package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-data-dir   application data directory
//	-db         vault database file
//	-icons-dir  directory for imported icons
//	-log-level  zerolog level name
//	-log-file   log file path
//	-ask-passphrase  prompt for the master passphrase
//	-c/-config  json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&cfg.Storage.DBPath, "db", "", "Vault database file")
	fs.StringVar(&cfg.Storage.IconsDir, "icons-dir", "", "Directory for imported icons")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&cfg.App.AskPassphrase, "ask-passphrase", false, "Prompt for the master passphrase")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
