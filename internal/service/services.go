package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// Services groups everything the presentation layer may call.
type Services struct {
	Accounts   AccountService
	Categories CategoryService
	Passwords  PasswordService

	// Keys holds the master key; Keys.SetPassphrase re-keys the cipher.
	Keys *crypto.KeyRing
	// Icons imports and checks icon files.
	Icons store.IconFileStorage
}

func NewServices(storages *store.Storages, keys *crypto.KeyRing, logger *logger.Logger) *Services {
	validator := validators.NewVaultValidator()
	cipher := crypto.NewFieldCipher(keys)

	return &Services{
		Accounts: NewAccountValidationService(validator).
			Wrap(NewAccountService(storages.Accounts, cipher, logger)),
		Categories: NewCategoryValidationService(validator).
			Wrap(NewCategoryService(storages.Categories, logger)),
		Passwords: NewPasswordService(),
		Keys:      keys,
		Icons:     storages.Icons,
	}
}
