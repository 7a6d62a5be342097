package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/application/service"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/request"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/response"
	"github.com/princebakery/pos-api/pkg/pagination"
)

// ProductHandler handles menu product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing the menu
func (h *ProductHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	pageParams.Validate()

	params := &repository.ProductFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		catID, err := uuid.Parse(categoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		params.CategoryID = &catID
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Get handles fetching a single product with its extras
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Create handles adding a product to the menu
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// Update handles a partial product update
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles removing a product from the menu
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddExtra attaches an add-on to a product
func (h *ProductHandler) AddExtra(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.CreateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	extra, err := h.productService.AddExtra(c.Request.Context(), productID, &service.AddExtraInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Extra created", extra)
}

// RemoveExtra detaches an add-on from its product
func (h *ProductHandler) RemoveExtra(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	extraID, err := uuid.Parse(c.Param("extraId"))
	if err != nil {
		response.BadRequest(c, "Invalid extra ID")
		return
	}

	if err := h.productService.RemoveExtra(c.Request.Context(), productID, extraID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
