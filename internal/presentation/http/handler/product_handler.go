package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook-api/internal/application/service"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/internal/presentation/http/dto/request"
	"github.com/shopbook/shopbook-api/internal/presentation/http/dto/response"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// ProductHandler handles inventory HTTP requests
type ProductHandler struct {
	inventoryService *service.InventoryService
}

// NewProductHandler creates a new product handler
func NewProductHandler(inventoryService *service.InventoryService) *ProductHandler {
	return &ProductHandler{inventoryService: inventoryService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.inventoryService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:          req.Name,
		Code:          req.Code,
		Category:      req.Category,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		BuyingPrice:   req.BuyingPrice,
		SellingPrice:  req.SellingPrice,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.inventoryService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		QuantityAlert: req.QuantityAlert,
		BuyingPrice:   req.BuyingPrice,
		SellingPrice:  req.SellingPrice,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Restock handles restocking a product
func (h *ProductHandler) Restock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	product, err := h.inventoryService.Restock(c.Request.Context(), id, &service.RestockInput{
		Quantity: req.Quantity,
		Date:     date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product restocked successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.inventoryService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles listing low stock products
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.inventoryService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// History handles listing a product's stock movement history
func (h *ProductHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.inventoryService.GetProductHistory(c.Request.Context(), id, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Product history retrieved successfully", result)
}
