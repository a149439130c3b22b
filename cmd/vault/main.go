package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// openLog is swapped in tests.
var openLog = logger.NewFileLogger

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	if err := run(context.Background(), os.Args[1:], buildInfo); err != nil {
		logger.NewLogger("go-pass-vault").Fatal().Err(err).Msg("vault stopped with error")
	}
}

// run returns instead of exiting so that deferred cleanup always happens.
func run(ctx context.Context, args []string, buildInfo models.AppBuildInfo) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// the terminal belongs to the UI, so logs go to a file
	log, logFile, err := openLog("go-pass-vault", cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer logFile.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	vault, err := app.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init vault app error")
		return err
	}

	if err = vault.Run(ctx); err != nil {
		log.Err(err).Msg("vault run error")
		return err
	}

	return nil
}
