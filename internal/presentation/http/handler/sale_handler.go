package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook-api/internal/application/service"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/internal/presentation/http/dto/request"
	"github.com/shopbook/shopbook-api/internal/presentation/http/dto/response"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// SaleHandler handles sales HTTP requests
type SaleHandler struct {
	salesService *service.SalesService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(salesService *service.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

// Record handles recording a checkout
func (h *SaleHandler) Record(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	paymentType := enum.PaymentTypePaid
	if req.PaymentType == "debt" {
		paymentType = enum.PaymentTypeDebt
	}

	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		response.BadRequest(c, "Invalid sale date, expected YYYY-MM-DD")
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), &service.RecordSaleInput{
		CustomerName:   req.CustomerName,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		PaymentType:    paymentType,
		SaleDate:       saleDate,
		Discount:       req.Discount,
		InitialDeposit: req.InitialDeposit,
		Items:          items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	switch filter.PaymentType {
	case "paid":
		paid := enum.PaymentTypePaid
		params.PaymentType = &paid
	case "debt":
		debt := enum.PaymentTypeDebt
		params.PaymentType = &debt
	}

	startDate, err := parseDatePtr(filter.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	params.StartDate = startDate

	endDate, err := parseDatePtr(filter.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}
	params.EndDate = endDate

	result, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}
