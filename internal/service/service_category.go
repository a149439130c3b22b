package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) Create(ctx context.Context, category models.Category) (int64, error) {
	category.Name = strings.TrimSpace(category.Name)

	id, err := s.categoryRepository.Add(ctx, category)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return id, nil
}

func (s *categoryService) Update(ctx context.Context, category models.Category) (bool, error) {
	category.Name = strings.TrimSpace(category.Name)

	found, err := s.categoryRepository.Update(ctx, category)
	if err != nil {
		return false, mapStoreError(err)
	}
	return found, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) (bool, error) {
	found, err := s.categoryRepository.Delete(ctx, id)
	if err != nil {
		return false, mapStoreError(err)
	}

	if found {
		logger.FromContext(ctx).Info().Int64("id", id).Msg("category deleted")
	}
	return found, nil
}

func (s *categoryService) List(ctx context.Context) []models.Category {
	categories, err := s.categoryRepository.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "categoryService.List").
			Msg("reading categories failed, returning none")
		return []models.Category{}
	}
	return categories
}

func (s *categoryService) GetByName(ctx context.Context, name string) (models.Category, bool) {
	category, err := s.categoryRepository.GetByName(ctx, name)
	return s.found(ctx, "categoryService.GetByName", category, err)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (models.Category, bool) {
	category, err := s.categoryRepository.GetByID(ctx, id)
	return s.found(ctx, "categoryService.GetByID", category, err)
}

func (s *categoryService) found(ctx context.Context, caller string, category models.Category, err error) (models.Category, bool) {
	if err == nil {
		return category, true
	}

	if !errors.Is(err, store.ErrCategoryNotFound) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", caller).
			Msg("reading category failed, treating as missing")
	}
	return models.Category{}, false
}
