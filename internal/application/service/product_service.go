package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/pkg/apperror"
	"github.com/princebakery/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductService manages the menu catalog
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the product creation input
type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Image       string
	CategoryID  *uuid.UUID
}

// CreateProduct adds a product to the menu
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperror.NewInvalidArgumentError("Price cannot be negative")
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns a product with its category and extras
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the menu, optionally filtered by search text and category
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateProductInput represents a partial product update
type UpdateProductInput struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Image       *string
	CategoryID  *uuid.UUID
}

// UpdateProduct updates a product. Already placed orders keep their
// snapshotted names and prices.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewInvalidArgumentError("Price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the menu
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// AddExtraInput represents the extra creation input
type AddExtraInput struct {
	Name  string
	Price decimal.Decimal
}

// AddExtra attaches an optional add-on to a product
func (s *ProductService) AddExtra(ctx context.Context, productID uuid.UUID, input *AddExtraInput) (*entity.Extra, error) {
	if input.Price.IsNegative() {
		return nil, apperror.NewInvalidArgumentError("Price cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	extra := &entity.Extra{
		ProductID: productID,
		Name:      input.Name,
		Price:     input.Price,
	}
	if err := s.productRepo.CreateExtra(ctx, extra); err != nil {
		return nil, err
	}
	return extra, nil
}

// RemoveExtra detaches an add-on from its product
func (s *ProductService) RemoveExtra(ctx context.Context, productID, extraID uuid.UUID) error {
	extras, err := s.productRepo.GetExtras(ctx, productID, []uuid.UUID{extraID})
	if err != nil {
		return err
	}
	if len(extras) == 0 {
		return apperror.NewNotFoundError("Extra")
	}
	return s.productRepo.DeleteExtra(ctx, extraID)
}
