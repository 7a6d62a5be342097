package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the product creation request body
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	Image       string          `json:"image" binding:"max=255"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Image       *string          `json:"image" binding:"omitempty,max=255"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

// CreateExtraRequest attaches an add-on to a product
type CreateExtraRequest struct {
	Name  string          `json:"name" binding:"required,max=100"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// CreateCategoryRequest represents the category creation request body
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Icon string `json:"icon" binding:"max=50"`
}
