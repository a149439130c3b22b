package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	keys     *crypto.KeyRing
	services *service.Services
	ui       *tui.TUI
	cfg      *config.StructuredConfig
	logger   *logger.Logger
}

// NewApp opens the vault described by cfg. The master key is derived from
// the built-in passphrase unless cfg.App.AskPassphrase is set, in which
// case it is read from the terminal.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	return newApp(ctx, cfg, buildInfo, terminalPassphrase(os.Stdin, os.Stdout), logger)
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo,
	read passphraseReader, logger *logger.Logger) (*App, error) {
	keys, err := newKeyRing(cfg.App, read)
	if err != nil {
		logger.Err(err).Str("func", "app.NewApp").Msg("error deriving master key")
		return nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		keys.Close()
		logger.Err(err).Str("func", "app.NewApp").Msg("error creating storages")
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorages, err)
	}

	services := service.NewServices(storages, keys, logger)

	return &App{
		keys:     keys,
		services: services,
		ui:       tui.New(services, buildInfo, logger),
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run shows the UI until the user quits or the process receives a stop
// signal. The master key is wiped on return.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	defer a.keys.Close()

	a.logger.Info().
		Str("db_path", a.cfg.Storage.DBPath).
		Str("icons_dir", a.cfg.Storage.IconsDir).
		Msg("vault opened")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRunningUI, err)
	}
	return nil
}
