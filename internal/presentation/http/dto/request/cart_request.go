package request

import "github.com/google/uuid"

// ExtraSelectionRequest selects one add-on for a cart line
type ExtraSelectionRequest struct {
	ExtraID  uuid.UUID `json:"extra_id" binding:"required"`
	Quantity int       `json:"quantity"`
}

// AddCartItemRequest represents the add-to-cart request body
type AddCartItemRequest struct {
	ProductID uuid.UUID               `json:"product_id" binding:"required"`
	Quantity  int                     `json:"quantity" binding:"required,gt=0"`
	Note      string                  `json:"note" binding:"max=255"`
	Extras    []ExtraSelectionRequest `json:"extras"`
}

// UpdateCartItemRequest represents a partial cart line update
type UpdateCartItemRequest struct {
	Quantity *int                     `json:"quantity" binding:"omitempty,gt=0"`
	Note     *string                  `json:"note" binding:"omitempty,max=255"`
	Extras   *[]ExtraSelectionRequest `json:"extras"`
}

// SetCartModeRequest switches the cart's fulfillment mode
type SetCartModeRequest struct {
	OrderType   string `json:"order_type" binding:"required,oneof=delivery parcel table"`
	TableNumber string `json:"table_number" binding:"max=10"`
}
