package models

import "time"

// Account represents one stored credential.
// Only PasswordCipher is sensitive; it always holds a token produced by the
// field cipher and is never written to the vault in clear text.
type Account struct {
	// ID is assigned by the store on insert and never changes afterwards.
	ID int64 `json:"id"`

	// Title is the display name of the credential.
	Title string `json:"title"`

	// Username is the login identifier.
	Username string `json:"username"`

	// PasswordCipher is base64(IV || AES-CBC ciphertext) of the password.
	PasswordCipher string `json:"password_cipher"`

	Email   string `json:"email"`
	Website string `json:"website"`
	Notes   string `json:"notes"`

	// Category is the name of a Category. It is a denormalized copy, not a
	// foreign key: deleting the category clears it through a cascade.
	Category string `json:"category"`

	// IconPath references an image file imported into the icons directory.
	IconPath string `json:"icon_path"`

	IsFavorite bool `json:"is_favorite"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is set at creation and refreshed on every update.
	ModifiedAt time.Time `json:"modified_at"`
}

// AccountInput is the plain form data the presentation layer submits when
// creating or editing an account. Password is clear text here; it is
// encrypted by the account service before anything reaches the store.
type AccountInput struct {
	Title      string
	Username   string
	Password   string
	Email      string
	Website    string
	Notes      string
	Category   string
	IconPath   string
	IsFavorite bool
}
