package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func titles(accounts []models.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Title)
	}
	return out
}

func seedAccounts(t *testing.T, repo AccountRepository, accounts ...models.Account) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		id, err := repo.Add(context.Background(), a)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestAccountRepository_AddAndGetByID(t *testing.T) {
	repo := newTestStorages(t).Accounts
	ctx := context.Background()

	id, err := repo.Add(ctx, models.Account{
		Title:          "GitHub",
		Username:       "octocat",
		PasswordCipher: "token",
		Email:          "octo@example.com",
		Website:        "https://github.com",
		Notes:          "work account",
		Category:       "Work",
		IconPath:       "/icons/gh.png",
		IsFavorite:     true,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "GitHub", got.Title)
	assert.Equal(t, "octocat", got.Username)
	assert.Equal(t, "token", got.PasswordCipher)
	assert.Equal(t, "octo@example.com", got.Email)
	assert.Equal(t, "https://github.com", got.Website)
	assert.Equal(t, "work account", got.Notes)
	assert.Equal(t, "Work", got.Category)
	assert.Equal(t, "/icons/gh.png", got.IconPath)
	assert.True(t, got.IsFavorite)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.CreatedAt.Equal(got.ModifiedAt))
}

func TestAccountRepository_AddAssignsDistinctIDs(t *testing.T) {
	repo := newTestStorages(t).Accounts

	ids := seedAccounts(t, repo,
		models.Account{Title: "a", Username: "u"},
		models.Account{Title: "b", Username: "u"},
	)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestStorages(t).Accounts

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_ListAll_OrderedByTitle(t *testing.T) {
	repo := newTestStorages(t).Accounts
	seedAccounts(t, repo,
		models.Account{Title: "Zoom", Username: "u"},
		models.Account{Title: "Amazon", Username: "u"},
		models.Account{Title: "Mail", Username: "u"},
	)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Amazon", "Mail", "Zoom"}, titles(got))
}

func TestAccountRepository_ListAll_Empty(t *testing.T) {
	repo := newTestStorages(t).Accounts

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAccountRepository_ListByCategory(t *testing.T) {
	repo := newTestStorages(t).Accounts
	seedAccounts(t, repo,
		models.Account{Title: "Slack", Username: "u", Category: "Work"},
		models.Account{Title: "Jira", Username: "u", Category: "Work"},
		models.Account{Title: "Steam", Username: "u", Category: "work"},
		models.Account{Title: "Bank", Username: "u"},
	)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "exact match", category: "Work", want: []string{"Jira", "Slack"}},
		{name: "case sensitive", category: "work", want: []string{"Steam"}},
		{name: "unknown", category: "Games", want: []string{}},
		{name: "empty name", category: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListByCategory(ctx, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestAccountRepository_ListFavorites(t *testing.T) {
	repo := newTestStorages(t).Accounts
	seedAccounts(t, repo,
		models.Account{Title: "b", Username: "u", IsFavorite: true},
		models.Account{Title: "c", Username: "u"},
		models.Account{Title: "a", Username: "u", IsFavorite: true},
	)

	got, err := repo.ListFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(got))
}

func TestAccountRepository_Search(t *testing.T) {
	repo := newTestStorages(t).Accounts
	seedAccounts(t, repo,
		models.Account{Title: "GitHub", Username: "octocat"},
		models.Account{Title: "Mail", Username: "john", Email: "john@example.com"},
		models.Account{Title: "Shop", Username: "buyer", Website: "https://shop.example.org"},
		models.Account{Title: "Почта", Username: "иван"},
		models.Account{Title: "Secret", Username: "x", Notes: "github backup codes"},
	)
	ctx := context.Background()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "title substring ignoring case", term: "git", want: []string{"GitHub"}},
		{name: "upper case term", term: "GITHUB", want: []string{"GitHub"}},
		{name: "username", term: "OCTO", want: []string{"GitHub"}},
		{name: "email", term: "john@", want: []string{"Mail"}},
		{name: "website", term: "example.org", want: []string{"Shop"}},
		{name: "matches several", term: "example", want: []string{"Mail", "Shop"}},
		{name: "unicode", term: "ПОЧ", want: []string{"Почта"}},
		{name: "notes are not searched", term: "backup", want: []string{}},
		{name: "no match", term: "nothing", want: []string{}},
		{name: "blank term lists all", term: "   ", want: []string{"GitHub", "Mail", "Secret", "Shop", "Почта"}},
		{name: "empty term lists all", term: "", want: []string{"GitHub", "Mail", "Secret", "Shop", "Почта"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestAccountRepository_Update(t *testing.T) {
	repo := newTestStorages(t).Accounts
	ctx := context.Background()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ids := seedAccounts(t, repo, models.Account{
		Title:      "Old",
		Username:   "u",
		CreatedAt:  created,
		ModifiedAt: created,
	})

	modified := time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)
	repo.(*accountRepository).now = func() time.Time { return modified }

	ok, err := repo.Update(ctx, models.Account{
		ID:             ids[0],
		Title:          "New",
		Username:       "user",
		PasswordCipher: "c2",
		Category:       "Home",
		IsFavorite:     true,
		CreatedAt:      time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "user", got.Username)
	assert.Equal(t, "c2", got.PasswordCipher)
	assert.Equal(t, "Home", got.Category)
	assert.True(t, got.IsFavorite)
	assert.True(t, got.CreatedAt.Equal(created), "created_at must not change")
	assert.True(t, got.ModifiedAt.Equal(modified))
}

func TestAccountRepository_Update_Missing(t *testing.T) {
	repo := newTestStorages(t).Accounts

	ok, err := repo.Update(context.Background(), models.Account{ID: 7, Title: "x", Username: "y"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountRepository_Delete(t *testing.T) {
	repo := newTestStorages(t).Accounts
	ctx := context.Background()
	ids := seedAccounts(t, repo, models.Account{Title: "a", Username: "u"})

	ok, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, ids[0])
	assert.ErrorIs(t, err, ErrAccountNotFound)

	ok, err = repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountRepository_CategoryNames(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	seedAccounts(t, s.Accounts,
		models.Account{Title: "a", Username: "u", Category: "Work"},
		models.Account{Title: "b", Username: "u", Category: "Work"},
		models.Account{Title: "c", Username: "u", Category: "Games"},
		models.Account{Title: "d", Username: "u"},
	)
	_, err := s.Categories.Add(ctx, models.Category{Name: "Banking"})
	require.NoError(t, err)
	_, err = s.Categories.Add(ctx, models.Category{Name: "Work"})
	require.NoError(t, err)

	names, err := s.Accounts.CategoryNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Banking", "Games", "Work"}, names)
}

func TestAccountRepository_CategoryNames_Empty(t *testing.T) {
	repo := newTestStorages(t).Accounts

	names, err := repo.CategoryNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
