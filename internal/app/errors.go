package app

import "errors"

var (
	ErrCreatingStorages  = errors.New("error creating storages")
	ErrRunningUI         = errors.New("error running terminal ui")
	ErrNotATerminal      = errors.New("master passphrase can only be typed in a terminal")
	ErrReadingPassphrase = errors.New("error reading master passphrase")
	ErrEmptyPassphrase   = errors.New("master passphrase is empty")
)
