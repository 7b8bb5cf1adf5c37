package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook-api/internal/application/service"
	"github.com/shopbook/shopbook-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard handles the dashboard overview
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// SalesSeries handles the revenue/profit time series
func (h *AnalyticsHandler) SalesSeries(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	interval := c.DefaultQuery("interval", "daily")
	if interval != "daily" && interval != "monthly" {
		response.BadRequest(c, "Interval must be daily or monthly")
		return
	}

	series, err := h.analyticsService.GetSalesSeries(c.Request.Context(), from, to, interval)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales series retrieved successfully", series)
}

// TopProducts handles the best sellers report
func (h *AnalyticsHandler) TopProducts(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	products, err := h.analyticsService.GetTopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", products)
}

// PaymentSplit handles the paid versus credit breakdown
func (h *AnalyticsHandler) PaymentSplit(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	split, err := h.analyticsService.GetPaymentSplit(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment split retrieved successfully", split)
}

// Categories handles the catalogue category distribution
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	distribution, err := h.analyticsService.GetCategoryDistribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category distribution retrieved successfully", distribution)
}
