package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// passphraseReader returns the master passphrase typed by the user.
type passphraseReader func() (string, error)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// terminalPassphrase prompts on out and reads the passphrase from in
// without echo.
func terminalPassphrase(in *os.File, out io.Writer) passphraseReader {
	return func() (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return "", ErrNotATerminal
		}

		fmt.Fprint(out, "Мастер-пароль: ")
		password, err := readPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadingPassphrase, err)
		}

		return string(password), nil
	}
}

// newKeyRing derives the master key, prompting for the passphrase when
// cfg asks for it.
func newKeyRing(cfg config.App, read passphraseReader) (*crypto.KeyRing, error) {
	if !cfg.AskPassphrase {
		return crypto.NewDefaultKeyRing(), nil
	}

	passphrase, err := read()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrEmptyPassphrase
	}

	return crypto.NewKeyRing(passphrase), nil
}
