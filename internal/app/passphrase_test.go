package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func fixedPassphrase(p string, err error) passphraseReader {
	return func() (string, error) { return p, err }
}

func TestNewKeyRing(t *testing.T) {
	t.Run("built-in passphrase", func(t *testing.T) {
		keys, err := newKeyRing(config.App{}, fixedPassphrase("", errors.New("must not be called")))
		require.NoError(t, err)
		defer keys.Close()

		key, err := keys.Key()
		require.NoError(t, err)
		assert.Equal(t, crypto.DeriveKey(crypto.DefaultMasterPassphrase), key)
	})

	t.Run("typed passphrase", func(t *testing.T) {
		keys, err := newKeyRing(config.App{AskPassphrase: true}, fixedPassphrase("correct horse", nil))
		require.NoError(t, err)
		defer keys.Close()

		key, err := keys.Key()
		require.NoError(t, err)
		assert.Equal(t, crypto.DeriveKey("correct horse"), key)
	})

	t.Run("blank passphrase", func(t *testing.T) {
		_, err := newKeyRing(config.App{AskPassphrase: true}, fixedPassphrase("  ", nil))
		assert.ErrorIs(t, err, ErrEmptyPassphrase)
	})

	t.Run("reader error", func(t *testing.T) {
		_, err := newKeyRing(config.App{AskPassphrase: true}, fixedPassphrase("", ErrReadingPassphrase))
		assert.ErrorIs(t, err, ErrReadingPassphrase)
	})
}

func TestTerminalPassphrase_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	_, err = terminalPassphrase(f, &out)()

	assert.ErrorIs(t, err, ErrNotATerminal)
	assert.Empty(t, out.String())
}

func TestNewApp_AskPassphraseChangesKey(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.App.AskPassphrase = true
	ctx := context.Background()
	info := models.NewAppBuildInfo("", "", "")

	first, err := newApp(ctx, cfg, info, fixedPassphrase("first", nil), logger.Nop())
	require.NoError(t, err)
	id, err := first.services.Accounts.Create(ctx, models.AccountInput{Title: "t", Username: "u", Password: "secret"})
	require.NoError(t, err)
	first.keys.Close()

	second, err := newApp(ctx, cfg, info, fixedPassphrase("first", nil), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(second.keys.Close)

	account, ok := second.services.Accounts.Get(ctx, id)
	require.True(t, ok)
	password, err := second.services.Accounts.RevealPassword(account)
	require.NoError(t, err)
	assert.Equal(t, "secret", password)

	_, err = os.Stat(filepath.Join(dir, "passwords.db"))
	assert.NoError(t, err)
}

func TestNewApp_PassphraseErrorStopsEarly(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.App.AskPassphrase = true

	_, err := newApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""),
		fixedPassphrase("", ErrNotATerminal), logger.Nop())
	require.ErrorIs(t, err, ErrNotATerminal)

	_, err = os.Stat(cfg.Storage.DBPath)
	assert.True(t, os.IsNotExist(err))
}
