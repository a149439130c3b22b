package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accountRepository is the SQLite-backed implementation of [AccountRepository].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] on top of db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *accountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, "accountRepository.ListAll", nil)
}

func (r *accountRepository) ListByCategory(ctx context.Context, name string) ([]models.Account, error) {
	if name == "" {
		return []models.Account{}, nil
	}
	return r.list(ctx, "accountRepository.ListByCategory", byCategory(name))
}

func (r *accountRepository) ListFavorites(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, "accountRepository.ListFavorites", favoritesOnly())
}

func (r *accountRepository) Search(ctx context.Context, term string) ([]models.Account, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.ListAll(ctx)
	}
	return r.list(ctx, "accountRepository.Search", containsTerm(strings.ToLower(term)))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (models.Account, error) {
	accounts, err := r.list(ctx, "accountRepository.GetByID", byID(id))
	if err != nil {
		return models.Account{}, err
	}
	if len(accounts) == 0 {
		return models.Account{}, ErrAccountNotFound
	}
	return accounts[0], nil
}

func (r *accountRepository) Add(ctx context.Context, account models.Account) (int64, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.ModifiedAt.IsZero() {
		account.ModifiedAt = account.CreatedAt
	}

	var id int64
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		result, err := q.ExecContext(ctx, insertAccount,
			account.Title,
			account.Username,
			account.PasswordCipher,
			account.Email,
			account.Website,
			account.Notes,
			account.Category,
			account.IconPath,
			account.IsFavorite,
			account.CreatedAt,
			account.ModifiedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: insert account: %w", ErrExecutingStatement, err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Add").
			Str("title", account.Title).
			Msg("failed to save account")
		return 0, err
	}

	return id, nil
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		result, err := q.ExecContext(ctx, updateAccount,
			account.Title,
			account.Username,
			account.PasswordCipher,
			account.Email,
			account.Website,
			account.Notes,
			account.Category,
			account.IconPath,
			account.IsFavorite,
			r.now(),
			account.ID,
		)
		if err != nil {
			return fmt.Errorf("%w: update account: %w", ErrExecutingStatement, err)
		}

		found, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Update").
			Int64("id", account.ID).
			Msg("failed to update account")
		return false, err
	}

	if !found {
		log.Warn().
			Str("func", "accountRepository.Update").
			Int64("id", account.ID).
			Msg("no rows affected during update: account not found")
	}

	return found, nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		result, err := q.ExecContext(ctx, deleteAccount, id)
		if err != nil {
			return fmt.Errorf("%w: delete account: %w", ErrExecutingStatement, err)
		}

		found, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Delete").
			Int64("id", id).
			Msg("failed to delete account")
		return false, err
	}

	return found, nil
}

func (r *accountRepository) CategoryNames(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	seen := make(map[string]struct{})
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		if err := collectStrings(ctx, q, selectAccountCategories, seen); err != nil {
			return err
		}
		return collectStrings(ctx, q, selectCategoryNames, seen)
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CategoryNames").
			Msg("failed to collect category names")
		return nil, err
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (r *accountRepository) list(ctx context.Context, caller string, where sq.Sqlizer) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(where)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to build account query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	accounts := make([]models.Account, 0)
	err = r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			account, err := scanAccount(rows)
			if err != nil {
				return err
			}
			accounts = append(accounts, account)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to query accounts")
		return nil, err
	}

	return accounts, nil
}

// scanAccount reads one row selected with accountColumns. Optional text
// columns may be NULL in files written by older releases.
func scanAccount(rows *sql.Rows) (models.Account, error) {
	var (
		account                                         models.Account
		email, website, notes, category, iconPath, pass sql.NullString
	)

	err := rows.Scan(
		&account.ID,
		&account.Title,
		&account.Username,
		&pass,
		&email,
		&website,
		&notes,
		&category,
		&iconPath,
		&account.IsFavorite,
		&account.CreatedAt,
		&account.ModifiedAt,
	)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	account.PasswordCipher = pass.String
	account.Email = email.String
	account.Website = website.String
	account.Notes = notes.String
	account.Category = category.String
	account.IconPath = iconPath.String

	return account, nil
}

func collectStrings(ctx context.Context, q DBTX, query string, into map[string]struct{}) error {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s sql.NullString
		if err = rows.Scan(&s); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if s.String != "" {
			into[s.String] = struct{}{}
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func rowsAffected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

// errNoRows reports whether err is database/sql's "no rows" signal.
func errNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
