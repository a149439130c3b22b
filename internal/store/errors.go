package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a lookup by id matches no account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCategoryNotFound is returned when a lookup by id or name matches no
	// category.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryAlreadyExists is returned when a category with the same name,
	// compared case-insensitively, is already registered.
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")

	// ErrIconOutsideStore is returned when asked to remove a file that does not
	// live in the icons directory.
	ErrIconOutsideStore = errors.New("icon is outside of the icons directory")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrOpeningDB is returned when the vault file cannot be opened or does
	// not answer a ping.
	ErrOpeningDB = errors.New("failed to open vault database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values from a result
	// row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
