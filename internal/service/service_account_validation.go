package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountValidationService checks account form data before handing it to
// the wrapped AccountService. Everything else passes straight through.
type AccountValidationService struct {
	AccountService
	validator validators.Validator
}

func NewAccountValidationService(validator validators.Validator) AccountServiceWrapper {
	return &AccountValidationService{
		validator: validator,
	}
}

func (v *AccountValidationService) Create(ctx context.Context, in models.AccountInput) (int64, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return 0, validationError(err)
	}

	return v.AccountService.Create(ctx, in)
}

func (v *AccountValidationService) Update(ctx context.Context, id int64, in models.AccountInput) (bool, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return false, validationError(err)
	}

	return v.AccountService.Update(ctx, id, in)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.AccountService = inner
	return v
}
