package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/passwords"
	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountService is the account API used by the presentation layer.
//
// Reads are lenient: a storage failure is logged and reported as an empty
// result. Writes report failures as ErrValidation, ErrStorage or ErrCipher.
type AccountService interface {
	// Create validates in, encrypts the password and stores a new account.
	Create(ctx context.Context, in models.AccountInput) (int64, error)
	// Update replaces the account with form data in. It reports false when
	// there is no account with this id.
	Update(ctx context.Context, id int64, in models.AccountInput) (bool, error)
	// Delete reports whether the account existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// ToggleFavorite flips the favorite flag and reports whether the account
	// existed.
	ToggleFavorite(ctx context.Context, id int64) (bool, error)

	Get(ctx context.Context, id int64) (models.Account, bool)
	List(ctx context.Context, filter models.AccountFilter) []models.Account
	Search(ctx context.Context, term string) []models.Account
	CategoryNames(ctx context.Context) []string

	// RevealPassword decrypts the password of account, failing with ErrCipher.
	RevealPassword(account models.Account) (string, error)
	// DisplayPassword is RevealPassword that degrades to "" on failure.
	DisplayPassword(account models.Account) string
}

// CategoryService is the category API used by the presentation layer.
type CategoryService interface {
	// Create stores a new category. It fails with ErrDuplicateName when the
	// name is already used, ignoring case.
	Create(ctx context.Context, category models.Category) (int64, error)
	Update(ctx context.Context, category models.Category) (bool, error)
	// Delete removes the category and unlinks every account that used it.
	Delete(ctx context.Context, id int64) (bool, error)

	List(ctx context.Context) []models.Category
	GetByName(ctx context.Context, name string) (models.Category, bool)
	GetByID(ctx context.Context, id int64) (models.Category, bool)
}

// PasswordService generates passwords and rates them.
type PasswordService interface {
	Generate(length int, includeSpecial bool) (string, error)
	Strength(password string) (int, passwords.Strength)
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// CategoryServiceWrapper defines middleware composition for CategoryService.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}
