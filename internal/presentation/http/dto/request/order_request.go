package request

// PlaceOrderRequest optionally overrides the cart mode at checkout
type PlaceOrderRequest struct {
	OrderType   *string `json:"order_type" binding:"omitempty,oneof=delivery parcel table"`
	TableNumber *string `json:"table_number" binding:"omitempty,max=10"`
}

// UpdateOrderStatusRequest moves an order through the kitchen workflow
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready served cancelled"`
}

// ReprintReceiptRequest selects which receipt copy to reprint
type ReprintReceiptRequest struct {
	Copy string `json:"copy" binding:"required,oneof=kitchen counter"`
}
