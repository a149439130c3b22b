package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists [models.Account] records.
//
// Every method is one unit of work against the vault file. The repository
// stores PasswordCipher as given; encryption is the caller's job.
type AccountRepository interface {
	// ListAll returns every account ordered by title.
	ListAll(ctx context.Context) ([]models.Account, error)

	// ListByCategory returns accounts whose category equals name exactly,
	// ordered by title. An empty name returns an empty result.
	ListByCategory(ctx context.Context, name string) ([]models.Account, error)

	// ListFavorites returns accounts marked as favorite, ordered by title.
	ListFavorites(ctx context.Context) ([]models.Account, error)

	// Search returns accounts whose title, username, email or website
	// contains term, ignoring case. A blank term behaves as ListAll.
	Search(ctx context.Context, term string) ([]models.Account, error)

	// GetByID returns the account or [ErrAccountNotFound].
	GetByID(ctx context.Context, id int64) (models.Account, error)

	// Add inserts account and returns the id assigned by the store.
	Add(ctx context.Context, account models.Account) (int64, error)

	// Update replaces every mutable field of the account with the same id and
	// refreshes ModifiedAt. It reports false when no such account exists.
	Update(ctx context.Context, account models.Account) (bool, error)

	// Delete removes the account and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// CategoryNames returns the distinct non-empty category names used by
	// accounts merged with every registered category name, sorted ascending.
	CategoryNames(ctx context.Context) ([]string, error)
}

// CategoryRepository persists [models.Category] records.
type CategoryRepository interface {
	// ListAll returns every category ordered by name.
	ListAll(ctx context.Context) ([]models.Category, error)

	// GetByName returns the category with exactly this name or
	// [ErrCategoryNotFound].
	GetByName(ctx context.Context, name string) (models.Category, error)

	// GetByID returns the category or [ErrCategoryNotFound].
	GetByID(ctx context.Context, id int64) (models.Category, error)

	// Add inserts category and returns its id. It fails with
	// [ErrCategoryAlreadyExists] if the name is taken, ignoring case.
	Add(ctx context.Context, category models.Category) (int64, error)

	// Update replaces name and icon of the category with the same id and
	// reports false when no such category exists.
	Update(ctx context.Context, category models.Category) (bool, error)

	// Delete removes the category and, in the same transaction, clears the
	// category of every account that referenced its name. It reports false
	// when no such category exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

// IconFileStorage keeps icon images referenced by accounts and categories
// outside of the database.
type IconFileStorage interface {
	// Import copies the file at srcPath into the icons directory under a new
	// unique name and returns the new path.
	Import(ctx context.Context, srcPath string) (string, error)

	// Exists reports whether path names an existing regular file.
	Exists(path string) bool

	// Remove deletes an imported icon. Removing a missing icon is not an error.
	Remove(path string) error
}
