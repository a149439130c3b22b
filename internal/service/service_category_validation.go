package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CategoryValidationService rejects categories without a name before they
// reach the wrapped CategoryService.
type CategoryValidationService struct {
	CategoryService
	validator validators.Validator
}

func NewCategoryValidationService(validator validators.Validator) CategoryServiceWrapper {
	return &CategoryValidationService{
		validator: validator,
	}
}

func (v *CategoryValidationService) Create(ctx context.Context, category models.Category) (int64, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return 0, validationError(err)
	}

	return v.CategoryService.Create(ctx, category)
}

func (v *CategoryValidationService) Update(ctx context.Context, category models.Category) (bool, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return false, validationError(err)
	}

	return v.CategoryService.Update(ctx, category)
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.CategoryService = inner
	return v
}
