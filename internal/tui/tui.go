// Package tui is the terminal front end of the vault.
package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the vault until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	model := newVaultModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		t.logger.Info().Str("func", "tui.Run").Msg("stopped by signal")
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "tui.Run").Msg("terminal program stopped with error")
		return err
	}
	if _, ok := finalModel.(vaultModel); !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Info().Str("func", "tui.Run").Msg("user quit")
	return nil
}
