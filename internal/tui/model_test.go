package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestModel(t *testing.T) (vaultModel, *service.Services) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Storage{
		DataDir:  dir,
		DBPath:   filepath.Join(dir, "passwords.db"),
		IconsDir: filepath.Join(dir, "Icons"),
	}
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	keys := crypto.NewKeyRing("test passphrase")
	t.Cleanup(keys.Close)

	services := service.NewServices(storages, keys, logger.Nop())
	m := newVaultModel(ctx, services, models.NewAppBuildInfo("v1.2.3", "2026-10-17", "abc123"))
	return update(t, m, m.Init()()), services
}

func update(t *testing.T, m vaultModel, msg tea.Msg) vaultModel {
	t.Helper()
	next, _ := m.Update(msg)
	vm, ok := next.(vaultModel)
	require.True(t, ok)
	return vm
}

// press sends key and returns the model with the command it produced.
func press(t *testing.T, m vaultModel, key tea.KeyMsg) (vaultModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	vm, ok := next.(vaultModel)
	require.True(t, ok)
	return vm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func addAccount(t *testing.T, services *service.Services, in models.AccountInput) int64 {
	t.Helper()
	id, err := services.Accounts.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}

func TestVaultModel_CreateAccountFromForm(t *testing.T) {
	m, services := newTestModel(t)

	m, _ = press(t, m, runes("n"))
	require.Equal(t, screenForm, m.screen)

	m, _ = press(t, m, runes("GitHub"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("octocat"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("s3cret пароль"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.saving)

	saved, ok := cmd().(accountSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	m = update(t, m, saved)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Запись сохранена", m.status)

	m = update(t, m, m.cmdLoadAccounts()())
	require.Len(t, m.accounts, 1)
	assert.Equal(t, "GitHub", m.accounts[0].Title)
	assert.NotContains(t, m.accounts[0].PasswordCipher, "s3cret")

	password, err := services.Accounts.RevealPassword(m.accounts[0])
	require.NoError(t, err)
	assert.Equal(t, "s3cret пароль", password)
}

func TestVaultModel_SaveReportsValidationError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("only a title"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = update(t, m, cmd())

	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, MsgEmptyUsername, m.form.err)
	assert.False(t, m.form.saving)
}

func TestVaultModel_GeneratePasswordShowsStrength(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})

	password := m.form.inputs[fieldPassword].Value()
	assert.Len(t, []rune(password), 16)
	assert.True(t, m.form.showPassword)
	assert.Contains(t, m.View(), "Надёжность:")
}

func TestVaultModel_EditPrefillsPassword(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "Mail", Username: "me", Password: "hunter2"})
	m = update(t, m, m.cmdLoadAccounts()())

	m, _ = press(t, m, runes("e"))

	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, "hunter2", m.form.inputs[fieldPassword].Value())
	assert.Empty(t, m.form.err)
	assert.Equal(t, m.accounts[0].ID, m.form.editID)
}

func TestVaultModel_EditWithUndecryptablePassword(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "Mail", Username: "me", Password: "hunter2"})
	m = update(t, m, m.cmdLoadAccounts()())

	services.Keys.Close()
	m, _ = press(t, m, runes("e"))

	assert.Empty(t, m.form.inputs[fieldPassword].Value())
	assert.Equal(t, MsgCipherOnEdit, m.form.err)
}

func TestVaultModel_CopyPassword(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "Bank", Username: "client", Password: "p@ss"})
	m = update(t, m, m.cmdLoadAccounts()())

	m, cmd := press(t, m, runes("c"))
	m = update(t, m, cmd())
	assert.Equal(t, "p@ss", copied)
	assert.Equal(t, "Скопировано: пароль", m.status)

	services.Keys.Close()
	m, cmd = press(t, m, runes("c"))
	m = update(t, m, cmd())
	require.NotNil(t, m.errOverlay)
	assert.Equal(t, MsgCipher, m.errOverlay.message)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.errOverlay)
}

func TestVaultModel_DetailMasksPassword(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "Bank", Username: "client", Password: "visible-secret"})
	m = update(t, m, m.cmdLoadAccounts()())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), maskedPassword)
	assert.NotContains(t, m.View(), "visible-secret")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Contains(t, m.View(), "visible-secret")

	services.Keys.Close()
	assert.NotContains(t, m.View(), "visible-secret")
}

func TestVaultModel_DeleteAccountAsksFirst(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "Old", Username: "u", Password: "p"})
	m = update(t, m, m.cmdLoadAccounts()())

	m, _ = press(t, m, runes("d"))
	require.NotNil(t, m.confirm)

	m, cmd := press(t, m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)

	m, _ = press(t, m, runes("d"))
	m, cmd = press(t, m, runes("y"))
	require.NotNil(t, cmd)

	deleted, ok := cmd().(accountDeletedMsg)
	require.True(t, ok)
	assert.True(t, deleted.found)

	m = update(t, m, deleted)
	m = update(t, m, m.cmdLoadAccounts()())
	assert.Empty(t, m.accounts)
}

func TestVaultModel_ToggleFavoriteAndFilter(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "A", Username: "u", Password: "p"})
	addAccount(t, services, models.AccountInput{Title: "B", Username: "u", Password: "p", Category: "Work"})
	m = update(t, m, m.cmdLoadAccounts()())
	require.Len(t, m.accounts, 2)
	assert.Equal(t, []string{"Work"}, m.categories)

	m, cmd := press(t, m, runes("*"))
	m = update(t, m, cmd())
	m = update(t, m, m.cmdLoadAccounts()())

	m, cmd = press(t, m, runes("f"))
	assert.Equal(t, models.FilterFavorites, m.filter.Kind)
	m = update(t, m, cmd())
	require.Len(t, m.accounts, 1)
	assert.Equal(t, "A", m.accounts[0].Title)

	m, cmd = press(t, m, runes("f"))
	assert.Equal(t, models.AccountFilter{Kind: models.FilterCategory, Category: "Work"}, m.filter)
	m = update(t, m, cmd())
	require.Len(t, m.accounts, 1)
	assert.Equal(t, "B", m.accounts[0].Title)

	m, _ = press(t, m, runes("f"))
	assert.Equal(t, models.FilterAll, m.filter.Kind)
}

func TestVaultModel_Search(t *testing.T) {
	m, services := newTestModel(t)
	addAccount(t, services, models.AccountInput{Title: "GitHub", Username: "octocat", Password: "p"})
	addAccount(t, services, models.AccountInput{Title: "Почта", Username: "user", Password: "p"})
	m = update(t, m, m.cmdLoadAccounts()())

	m, _ = press(t, m, runes("/"))
	require.True(t, m.searching)

	m, cmd := press(t, m, runes("почт"))
	require.NotNil(t, cmd)
	m = update(t, m, m.cmdLoadAccounts()())
	require.Len(t, m.accounts, 1)
	assert.Equal(t, "Почта", m.accounts[0].Title)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searching)
	assert.Empty(t, m.search.Value())
	m = update(t, m, cmd())
	assert.Len(t, m.accounts, 2)
}

func TestVaultModel_CategoryDeleteUnlinksAccounts(t *testing.T) {
	m, services := newTestModel(t)
	ctx := context.Background()

	_, err := services.Categories.Create(ctx, models.Category{Name: "Work"})
	require.NoError(t, err)
	id := addAccount(t, services, models.AccountInput{Title: "Jira", Username: "u", Password: "p", Category: "Work"})

	m, cmd := press(t, m, runes("g"))
	require.Equal(t, screenCategories, m.screen)
	m = update(t, m, cmd())
	require.Len(t, m.categoryList.categories, 1)

	m, _ = press(t, m, runes("d"))
	require.NotNil(t, m.confirm)
	m, cmd = press(t, m, runes("y"))
	m = update(t, m, cmd())
	assert.Equal(t, "Категория удалена", m.status)

	account, ok := services.Accounts.Get(ctx, id)
	require.True(t, ok)
	assert.Empty(t, account.Category)
}

func TestVaultModel_CategoryDuplicateName(t *testing.T) {
	m, services := newTestModel(t)
	_, err := services.Categories.Create(context.Background(), models.Category{Name: "Work"})
	require.NoError(t, err)

	m, cmd := press(t, m, runes("g"))
	m = update(t, m, cmd())

	m, _ = press(t, m, runes("n"))
	require.True(t, m.categoryList.editing)
	m, _ = press(t, m, runes("WORK"))
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, cmd())

	assert.True(t, m.categoryList.editing)
	assert.Equal(t, MsgDuplicateCategory, m.categoryList.err)
}

func TestVaultModel_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestVaultModel_ResaveKeepsIconDespiteWhitespace(t *testing.T) {
	m, services := newTestModel(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "github.png")
	require.NoError(t, os.WriteFile(src, []byte("png"), 0o600))
	stored, err := services.Icons.Import(ctx, src)
	require.NoError(t, err)

	id := addAccount(t, services, models.AccountInput{
		Title: "GitHub", Username: "octocat", Password: "hunter2", IconPath: stored,
	})

	in := models.AccountInput{
		Title: "GitHub", Username: "octocat", Password: "hunter2", IconPath: "  " + stored + "\t",
	}
	msg := m.cmdSaveAccount(id, stored, in)()
	saved, ok := msg.(accountSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	account, found := services.Accounts.Get(ctx, id)
	require.True(t, found)
	assert.Equal(t, stored, account.IconPath)
	assert.True(t, services.Icons.Exists(stored))

	entries, err := os.ReadDir(filepath.Dir(stored))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "icon must not be imported again")
}
