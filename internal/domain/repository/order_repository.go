package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/pkg/pagination"
)

// OrderFilterParams represents filter parameters for listing orders
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
}

// OrderRepository defines persistence for placed orders
type OrderRepository interface {
	// Place atomically creates the order with all its items and extras,
	// deletes the cart's lines and resets its cached total. Either all of
	// it becomes visible or none of it does.
	Place(ctx context.Context, order *entity.Order, cart *entity.Cart) error

	// GetByID returns the order with items and extras preloaded, or nil.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, userID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
}

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
