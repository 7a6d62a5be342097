package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
)

// CartRepository defines persistence for the single active cart per user.
// Implementations must preload items in insertion order together with their
// products and extras, since line totals are derived from those references.
type CartRepository interface {
	// GetOrCreate returns the user's cart, creating an empty delivery-mode
	// cart when none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// GetItem returns the cart line only when it belongs to the given
	// user's cart; nil otherwise.
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)

	CreateItem(ctx context.Context, item *entity.CartItem) error
	UpdateItem(ctx context.Context, item *entity.CartItem) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ReplaceItemExtras removes all extras on the line and attaches the
	// given set in one step.
	ReplaceItemExtras(ctx context.Context, itemID uuid.UUID, extras []entity.CartItemExtra) error

	// Save persists the cart's own columns (order type, table number,
	// cached total).
	Save(ctx context.Context, cart *entity.Cart) error

	// ClearItems deletes every line of the cart. The cart row itself
	// survives so the mode/table preference does too.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
