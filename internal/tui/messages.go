package tui

import (
	"github.com/MKhiriev/go-pass-vault/models"
)

type accountsLoadedMsg struct {
	accounts      []models.Account
	categoryNames []string
}

type categoriesLoadedMsg struct {
	categories []models.Category
}

type accountSavedMsg struct {
	err error
}

type accountDeletedMsg struct {
	found bool
	err   error
}

type favoriteToggledMsg struct {
	id  int64
	err error
}

type categorySavedMsg struct {
	err error
}

type categoryDeletedMsg struct {
	found bool
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg int
