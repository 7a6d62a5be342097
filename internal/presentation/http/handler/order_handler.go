package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/application/service"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/request"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/response"
	"github.com/princebakery/pos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place checks out the user's cart into an order and prints the receipts
func (h *OrderHandler) Place(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.PlaceOrderInput{TableNumber: req.TableNumber}
	if req.OrderType != nil {
		orderType := enum.OrderType(*req.OrderType)
		input.OrderType = &orderType
	}

	output, err := h.orderService.PlaceOrder(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed", gin.H{
		"order":           output.Order,
		"kitchen_printed": output.KitchenPrinted,
		"counter_printed": output.CounterPrinted,
	})
}

// Get returns one of the user's orders
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// List returns the user's orders, newest first
func (h *OrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	pageParams.Validate()

	params := &repository.OrderFilterParams{Pagination: &pageParams}
	if status := c.Query("status"); status != "" {
		orderStatus := enum.OrderStatus(status)
		if !orderStatus.Valid() {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &orderStatus
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// UpdateStatus moves an order through the kitchen workflow
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Reprint re-sends one receipt copy of an existing order to its printer
func (h *OrderHandler) Reprint(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.ReprintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printed, err := h.orderService.ReprintReceipt(c.Request.Context(), *userID, orderID, req.Copy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reprint attempted", gin.H{
		"copy":    req.Copy,
		"printed": printed,
	})
}
