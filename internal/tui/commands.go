package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// cmdLoadAccounts reloads the visible accounts. A non-blank search term
// takes precedence over the filter.
func (m vaultModel) cmdLoadAccounts() tea.Cmd {
	ctx, accounts := m.ctx, m.services.Accounts
	filter, term := m.filter, m.search.Value()

	return func() tea.Msg {
		var list []models.Account
		if term != "" {
			list = accounts.Search(ctx, term)
		} else {
			list = accounts.List(ctx, filter)
		}
		return accountsLoadedMsg{
			accounts:      list,
			categoryNames: accounts.CategoryNames(ctx),
		}
	}
}

func (m vaultModel) cmdLoadCategories() tea.Cmd {
	ctx, categories := m.ctx, m.services.Categories
	return func() tea.Msg {
		return categoriesLoadedMsg{categories: categories.List(ctx)}
	}
}

func (m vaultModel) cmdToggleFavorite(id int64) tea.Cmd {
	ctx, accounts := m.ctx, m.services.Accounts
	return func() tea.Msg {
		_, err := accounts.ToggleFavorite(ctx, id)
		return favoriteToggledMsg{id: id, err: err}
	}
}

// cmdDeleteAccount deletes the account and then its imported icon.
func (m vaultModel) cmdDeleteAccount(account models.Account) tea.Cmd {
	ctx, accounts, icons := m.ctx, m.services.Accounts, m.services.Icons
	return func() tea.Msg {
		found, err := accounts.Delete(ctx, account.ID)
		if err != nil {
			return accountDeletedMsg{err: err}
		}
		if found && account.IconPath != "" {
			removeIcon(ctx, icons, account.IconPath)
		}
		return accountDeletedMsg{found: found}
	}
}

func (m vaultModel) cmdCopyUsername(account models.Account) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: "логин", err: clipboardWrite(account.Username)}
	}
}

// cmdCopyPassword decrypts strictly: a broken token is reported instead of
// copying an empty string.
func (m vaultModel) cmdCopyPassword(account models.Account) tea.Cmd {
	accounts := m.services.Accounts
	return func() tea.Msg {
		password, err := accounts.RevealPassword(account)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{what: "пароль", err: clipboardWrite(password)}
	}
}

// cmdSaveAccount imports a newly picked icon and then creates or updates the
// account. editID is zero for a new account.
func (m vaultModel) cmdSaveAccount(editID int64, previousIcon string, in models.AccountInput) tea.Cmd {
	ctx, accounts, icons := m.ctx, m.services.Accounts, m.services.Icons
	in.IconPath = strings.TrimSpace(in.IconPath)
	return func() tea.Msg {
		log := logger.FromContext(ctx)

		if in.IconPath != "" && in.IconPath != previousIcon {
			imported, err := icons.Import(ctx, in.IconPath)
			if err != nil {
				log.Err(err).Str("func", "tui.cmdSaveAccount").Msg("failed to import icon")
				return accountSavedMsg{err: fmt.Errorf("%w: %w", errIconImport, err)}
			}
			in.IconPath = imported
		}

		var err error
		if editID == 0 {
			_, err = accounts.Create(ctx, in)
		} else {
			var found bool
			found, err = accounts.Update(ctx, editID, in)
			if err == nil && !found {
				err = errAccountGone
			}
		}
		if err != nil {
			if in.IconPath != "" && in.IconPath != previousIcon {
				removeIcon(ctx, icons, in.IconPath)
			}
			return accountSavedMsg{err: err}
		}

		if previousIcon != "" && previousIcon != in.IconPath {
			removeIcon(ctx, icons, previousIcon)
		}
		return accountSavedMsg{}
	}
}

// cmdSaveCategory creates or updates category, importing a newly picked
// icon first.
func (m vaultModel) cmdSaveCategory(category models.Category, previousIcon string) tea.Cmd {
	ctx, categories, icons := m.ctx, m.services.Categories, m.services.Icons
	category.IconPath = strings.TrimSpace(category.IconPath)
	return func() tea.Msg {
		if category.IconPath != "" && category.IconPath != previousIcon {
			imported, err := icons.Import(ctx, category.IconPath)
			if err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "tui.cmdSaveCategory").Msg("failed to import icon")
				return categorySavedMsg{err: fmt.Errorf("%w: %w", errIconImport, err)}
			}
			category.IconPath = imported
		}

		var err error
		if category.ID == 0 {
			_, err = categories.Create(ctx, category)
		} else {
			_, err = categories.Update(ctx, category)
		}
		if err != nil {
			if category.IconPath != "" && category.IconPath != previousIcon {
				removeIcon(ctx, icons, category.IconPath)
			}
			return categorySavedMsg{err: err}
		}

		if previousIcon != "" && previousIcon != category.IconPath {
			removeIcon(ctx, icons, previousIcon)
		}
		return categorySavedMsg{}
	}
}

// cmdDeleteCategory deletes the category, unlinking its accounts, and then
// its imported icon.
func (m vaultModel) cmdDeleteCategory(category models.Category) tea.Cmd {
	ctx, categories, icons := m.ctx, m.services.Categories, m.services.Icons
	return func() tea.Msg {
		found, err := categories.Delete(ctx, category.ID)
		if err != nil {
			return categoryDeletedMsg{err: err}
		}
		if found && category.IconPath != "" {
			removeIcon(ctx, icons, category.IconPath)
		}
		return categoryDeletedMsg{found: found}
	}
}

// removeIcon deletes an icon the vault imported earlier. Paths outside the
// icons directory were never imported and are left alone.
func removeIcon(ctx context.Context, icons store.IconFileStorage, path string) {
	err := icons.Remove(path)
	if err == nil || errors.Is(err, store.ErrIconOutsideStore) {
		return
	}
	logger.FromContext(ctx).Warn().Err(err).Str("func", "tui.removeIcon").
		Str("icon_path", path).Msg("failed to remove icon file")
}
