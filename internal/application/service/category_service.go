package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/pkg/apperror"
)

// CategoryService manages menu categories
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory adds a menu category
func (s *CategoryService) CreateCategory(ctx context.Context, name, icon string) (*entity.Category, error) {
	category := &entity.Category{
		Name: name,
		Icon: icon,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns every menu category
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes a category. Products keep existing with no category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
