package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/pkg/pagination"
)

// ProductFilterParams represents filter parameters for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
}

// ProductRepository defines the read/write interface for the menu catalog.
// The cart and order services use only the read side.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateExtra(ctx context.Context, extra *entity.Extra) error
	// GetExtras returns the product's extras matching ids. Extras belonging
	// to other products are not returned.
	GetExtras(ctx context.Context, productID uuid.UUID, ids []uuid.UUID) ([]entity.Extra, error)
	DeleteExtra(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for menu categories
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
