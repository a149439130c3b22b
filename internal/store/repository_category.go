package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// categoryRepository is the SQLite-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCategoryRepository constructs a [CategoryRepository] on top of db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories := make([]models.Category, 0)
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		var err error
		categories, err = queryCategories(ctx, q, selectAllCategories)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.ListAll").Msg("failed to list categories")
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (models.Category, error) {
	return r.getOne(ctx, "categoryRepository.GetByName", selectCategoryByName, name)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (models.Category, error) {
	return r.getOne(ctx, "categoryRepository.GetByID", selectCategoryByID, id)
}

func (r *categoryRepository) Add(ctx context.Context, category models.Category) (int64, error) {
	log := logger.FromContext(ctx)

	if category.CreatedAt.IsZero() {
		category.CreatedAt = r.now()
	}

	var id int64
	err := r.db.DoTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := ensureNameFree(ctx, tx, category.Name, 0); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, insertCategory, category.Name, category.IconPath, category.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrCategoryAlreadyExists
			}
			return fmt.Errorf("%w: insert category: %w", ErrExecutingStatement, err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Add").
			Str("name", category.Name).
			Msg("failed to save category")
		return 0, err
	}

	return id, nil
}

func (r *categoryRepository) Update(ctx context.Context, category models.Category) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	err := r.db.DoTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := ensureNameFree(ctx, tx, category.Name, category.ID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, updateCategory, category.Name, category.IconPath, category.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrCategoryAlreadyExists
			}
			return fmt.Errorf("%w: update category: %w", ErrExecutingStatement, err)
		}

		found, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Update").
			Int64("id", category.ID).
			Msg("failed to update category")
		return false, err
	}

	return found, nil
}

// Delete removes the category and unlinks accounts that used its name in one
// transaction. Accounts keep their ModifiedAt.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var (
		found    bool
		unlinked int64
	)
	err := r.db.DoTx(ctx, func(ctx context.Context, tx DBTX) error {
		category, err := scanCategory(tx.QueryRowContext(ctx, selectCategoryByID, id))
		if err != nil {
			if errNoRows(err) {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		result, err := tx.ExecContext(ctx, unlinkAccountsFromCategory, category.Name)
		if err != nil {
			return fmt.Errorf("%w: unlink accounts: %w", ErrExecutingStatement, err)
		}
		if unlinked, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
		}

		result, err = tx.ExecContext(ctx, deleteCategory, id)
		if err != nil {
			return fmt.Errorf("%w: delete category: %w", ErrExecutingStatement, err)
		}

		found, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Delete").
			Int64("id", id).
			Msg("failed to delete category")
		return false, err
	}

	if found {
		log.Debug().
			Str("func", "categoryRepository.Delete").
			Int64("id", id).
			Int64("unlinked_accounts", unlinked).
			Msg("category deleted")
	}

	return found, nil
}

func (r *categoryRepository) getOne(ctx context.Context, caller, query string, arg any) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	err := r.db.Do(ctx, func(ctx context.Context, q DBTX) error {
		var err error
		category, err = scanCategory(q.QueryRowContext(ctx, query, arg))
		if err != nil {
			if errNoRows(err) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCategoryNotFound) {
			log.Err(err).Str("func", caller).Msg("failed to get category")
		}
		return models.Category{}, err
	}

	return category, nil
}

// ensureNameFree fails with ErrCategoryAlreadyExists when another category
// (any id but exceptID) already uses name, compared with Unicode case
// folding. The NOCASE index only folds ASCII.
func ensureNameFree(ctx context.Context, q DBTX, name string, exceptID int64) error {
	categories, err := queryCategories(ctx, q, selectAllCategories)
	if err != nil {
		return err
	}

	for _, c := range categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return ErrCategoryAlreadyExists
		}
	}
	return nil
}

func queryCategories(ctx context.Context, q DBTX, query string, args ...any) ([]models.Category, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return categories, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		category models.Category
		iconPath sql.NullString
	)

	if err := row.Scan(&category.ID, &category.Name, &iconPath, &category.CreatedAt); err != nil {
		return models.Category{}, err
	}
	category.IconPath = iconPath.String

	return category, nil
}
