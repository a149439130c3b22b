// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// accountColumns is the column order every account SELECT uses; scanAccount
// depends on it.
var accountColumns = []string{
	"id",
	"title",
	"username",
	"password_cipher",
	"email",
	"website",
	"notes",
	"category",
	"icon_path",
	"is_favorite",
	"created_at",
	"modified_at",
}

// searchableAccountColumns are matched by Search.
var searchableAccountColumns = []string{"title", "username", "email", "website"}

const (
	insertAccount = `
		INSERT INTO accounts (
			title,
			username,
			password_cipher,
			email,
			website,
			notes,
			category,
			icon_path,
			is_favorite,
			created_at,
			modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateAccount = `
		UPDATE accounts SET
			title           = ?,
			username        = ?,
			password_cipher = ?,
			email           = ?,
			website         = ?,
			notes           = ?,
			category        = ?,
			icon_path       = ?,
			is_favorite     = ?,
			modified_at     = ?
		WHERE id = ?;`

	deleteAccount = `DELETE FROM accounts WHERE id = ?;`

	selectAccountCategories = `
		SELECT DISTINCT category
		FROM accounts
		WHERE category IS NOT NULL AND category <> '';`

	unlinkAccountsFromCategory = `
		UPDATE accounts SET category = ''
		WHERE category = ?;`

	insertCategory = `
		INSERT INTO categories (name, icon_path, created_at)
		VALUES (?, ?, ?);`

	selectAllCategories = `
		SELECT id, name, icon_path, created_at
		FROM categories
		ORDER BY name;`

	selectCategoryByID = `
		SELECT id, name, icon_path, created_at
		FROM categories
		WHERE id = ?;`

	selectCategoryByName = `
		SELECT id, name, icon_path, created_at
		FROM categories
		WHERE name = ?;`

	selectCategoryNames = `SELECT name FROM categories;`

	updateCategory = `
		UPDATE categories SET
			name      = ?,
			icon_path = ?
		WHERE id = ?;`

	deleteCategory = `DELETE FROM categories WHERE id = ?;`
)

// buildSelectAccountsQuery builds the account SELECT shared by every
// listing. where may be nil for "all accounts". Rows are ordered by title
// using SQLite's binary (case-sensitive) collation.
func buildSelectAccountsQuery(where sq.Sqlizer) (string, []any, error) {
	builder := sq.Select(accountColumns...).
		From("accounts").
		OrderBy("title")

	if where != nil {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

// byID matches a single account.
func byID(id int64) sq.Sqlizer {
	return sq.Eq{"id": id}
}

// byCategory matches accounts whose category equals name exactly.
func byCategory(name string) sq.Sqlizer {
	return sq.Eq{"category": name}
}

// favoritesOnly matches accounts flagged as favorite.
func favoritesOnly() sq.Sqlizer {
	return sq.Eq{"is_favorite": true}
}

// containsTerm matches accounts where any searchable column contains term,
// ignoring case. term must already be lower-cased; vault_lower is the
// Unicode-aware lower() installed by the vault's SQLite driver.
func containsTerm(term string) sq.Sqlizer {
	or := make(sq.Or, 0, len(searchableAccountColumns))
	for _, col := range searchableAccountColumns {
		or = append(or, sq.Expr("instr(vault_lower(coalesce("+col+", '')), ?) > 0", term))
	}
	return or
}
