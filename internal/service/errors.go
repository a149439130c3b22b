package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Error kinds returned by the services. Match them with [errors.Is]; the
// underlying cause stays reachable through the chain.
var (
	// ErrValidation wraps a validators.Err* cause. Nothing was persisted.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName is returned when a category name is already taken,
	// ignoring case.
	ErrDuplicateName = store.ErrCategoryAlreadyExists

	// ErrCipher is returned when a password token cannot be encrypted or
	// decrypted with the current key.
	ErrCipher = crypto.ErrCipher

	// ErrStorage wraps a failure of the vault file during a write.
	ErrStorage = errors.New("storage failure")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// mapStoreError translates a store error returned by a write into a service
// error kind.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCategoryAlreadyExists):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
