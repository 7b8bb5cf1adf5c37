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

// DebtHandler handles debt book HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// Create handles creating a manual debt entry
func (h *DebtHandler) Create(c *gin.Context) {
	var req request.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), &service.CreateDebtInput{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Amount:       req.Amount,
		Date:         date,
		DueDate:      dueDate,
		Description:  req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Debt recorded successfully", debt)
}

// List handles listing debts
func (h *DebtHandler) List(c *gin.Context) {
	var filter request.DebtFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DebtFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	switch filter.Status {
	case "pending":
		pending := enum.DebtStatusPending
		params.Status = &pending
	case "paid":
		paid := enum.DebtStatusPaid
		params.Status = &paid
	}

	result, err := h.debtService.ListDebts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Debts retrieved successfully", result)
}

// Get handles getting a single debt with its deposits
func (h *DebtHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt retrieved successfully", debt)
}

// AddDeposit handles applying a deposit to a debt
func (h *DebtHandler) AddDeposit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req request.AddDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	debt, err := h.debtService.AddDeposit(c.Request.Context(), id, &service.AddDepositInput{
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deposit recorded successfully", debt)
}

// MarkPaid handles force-closing a debt
func (h *DebtHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt marked as paid", debt)
}

// Overdue handles listing overdue debts
func (h *DebtHandler) Overdue(c *gin.Context) {
	debts, err := h.debtService.ListOverdueDebts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue debts retrieved successfully", debts)
}
