package validators

import (
	"context"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the store-assigned id of an existing record.
	FieldID = "id"

	// FieldTitle targets the display name of an account.
	FieldTitle = "title"

	// FieldUsername targets the login of an account.
	FieldUsername = "username"

	// FieldPassword targets the clear-text password of an account form.
	FieldPassword = "password"

	// FieldCategoryName targets the name of a category.
	FieldCategoryName = "category_name"
)

// tagNotBlank rejects strings that are empty after trimming white space.
const tagNotBlank = "vault_notblank"

// VaultValidator implements the Validator interface for the vault's input
// models: AccountInput, Account and Category.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments. Text is
// checked after trimming surrounding white space.
type VaultValidator struct {
	playground *validator.Validate
}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	playground := validator.New(validator.WithRequiredStructEnabled())
	// tagNotBlank is neither empty nor reserved, so registration cannot fail.
	_ = playground.RegisterValidation(tagNotBlank, nonstandard.NotBlank)

	return &VaultValidator{playground: playground}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. A nil pointer fails with ErrNilInput.
//
// Supported types:
//   - models.AccountInput / *models.AccountInput
//   - models.Account / *models.Account
//   - models.Category / *models.Category
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case nil:
		return ErrNilInput

	case models.AccountInput:
		return v.validateAccountInput(ctx, value, fields...)
	case *models.AccountInput:
		if value == nil {
			return ErrNilInput
		}
		return v.validateAccountInput(ctx, *value, fields...)

	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrNilInput
		}
		return v.validateAccount(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		if value == nil {
			return ErrNilInput
		}
		return v.validateCategory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateAccountInput validates the form data of a new or edited account.
//
// Default validated fields: Title, Username, Password.
func (v *VaultValidator) validateAccountInput(_ context.Context, in models.AccountInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if v.blank(in.Title) {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if v.blank(in.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if v.blank(in.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAccount validates a record about to be persisted.
//
// Default validated fields: Title, Username.
func (v *VaultValidator) validateAccount(_ context.Context, a models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if a.ID <= 0 {
				return ErrInvalidID
			}
		case FieldTitle:
			if v.blank(a.Title) {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if v.blank(a.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if a.PasswordCipher == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCategory validates a category.
//
// Default validated fields: CategoryName.
func (v *VaultValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID <= 0 {
				return ErrInvalidID
			}
		case FieldCategoryName:
			if v.blank(c.Name) {
				return ErrEmptyCategoryName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) blank(s string) bool {
	return v.playground.Var(s, tagNotBlank) != nil
}
