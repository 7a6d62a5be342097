package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/application/service"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/request"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the user's cart
func (h *CartHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved", cart)
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), *userID, &service.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Note:      req.Note,
		Extras:    toExtraSelections(req.Extras),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// UpdateItem partially updates a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart item ID")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		Quantity: req.Quantity,
		Note:     req.Note,
	}
	if req.Extras != nil {
		extras := toExtraSelections(*req.Extras)
		input.Extras = &extras
	}

	cart, err := h.cartService.UpdateItem(c.Request.Context(), *userID, itemID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart item updated", cart)
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart item ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), *userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart item removed", cart)
}

// SetMode switches the cart's fulfillment mode
func (h *CartHandler) SetMode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetCartModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.SetMode(c.Request.Context(), *userID, enum.OrderType(req.OrderType), req.TableNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart mode updated", cart)
}

// Clear removes every line from the cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cart, err := h.cartService.Clear(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared", cart)
}

func toExtraSelections(reqs []request.ExtraSelectionRequest) []service.ExtraSelection {
	if len(reqs) == 0 {
		return nil
	}
	selections := make([]service.ExtraSelection, len(reqs))
	for i, r := range reqs {
		selections[i] = service.ExtraSelection{
			ExtraID:  r.ExtraID,
			Quantity: r.Quantity,
		}
	}
	return selections
}
