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

// LedgerHandler handles financial ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List handles listing ledger transactions
func (h *LedgerHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	switch filter.Type {
	case "income":
		t := enum.TransactionTypeIncome
		params.Type = &t
	case "expense":
		t := enum.TransactionTypeExpense
		params.Type = &t
	case "accounts-receivable":
		t := enum.TransactionTypeReceivable
		params.Type = &t
	case "capital":
		t := enum.TransactionTypeCapital
		params.Type = &t
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

	result, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Add handles creating a manual ledger entry
func (h *LedgerHandler) Add(c *gin.Context) {
	var req request.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	transactionType := enum.TransactionTypeIncome
	if req.Type == "expense" {
		transactionType = enum.TransactionTypeExpense
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	transaction, err := h.ledgerService.AddTransaction(c.Request.Context(), &service.AddTransactionInput{
		Type:          transactionType,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", transaction)
}

// SetOpeningBalance handles posting the one-time opening balance
func (h *LedgerHandler) SetOpeningBalance(c *gin.Context) {
	var req request.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	transaction, err := h.ledgerService.SetOpeningBalance(c.Request.Context(), &service.SetOpeningBalanceInput{
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Opening balance set successfully", transaction)
}

// Summary handles retrieving the ledger totals and current balance
func (h *LedgerHandler) Summary(c *gin.Context) {
	totals, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger summary retrieved successfully", gin.H{
		"income":              float64(totals.Income) / 100,
		"expense":             float64(totals.Expense) / 100,
		"capital":             float64(totals.Capital) / 100,
		"accounts_receivable": float64(totals.UnsettledReceivable) / 100,
		"current_balance":     float64(totals.Balance()) / 100,
	})
}
