package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
)

// AnalyticsService provides sales analytics and dashboard statistics
type AnalyticsService struct {
	saleRepo        repository.SaleRepository
	productRepo     repository.ProductRepository
	debtRepo        repository.DebtRepository
	transactionRepo repository.TransactionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	debtRepo repository.DebtRepository,
	transactionRepo repository.TransactionRepository,
) *AnalyticsService {
	return &AnalyticsService{
		saleRepo:        saleRepo,
		productRepo:     productRepo,
		debtRepo:        debtRepo,
		transactionRepo: transactionRepo,
	}
}

// DashboardStats represents the overview numbers on the dashboard
type DashboardStats struct {
	TodayRevenue     float64 `json:"today_revenue"`
	TodayProfit      float64 `json:"today_profit"`
	TodaySalesCount  int     `json:"today_sales_count"`
	MonthRevenue     float64 `json:"month_revenue"`
	MonthProfit      float64 `json:"month_profit"`
	TotalProducts    int64   `json:"total_products"`
	LowStockCount    int     `json:"low_stock_count"`
	StockValue       float64 `json:"stock_value"`
	PendingDebts     int64   `json:"pending_debts"`
	OutstandingDebts float64 `json:"outstanding_debts"`
	CurrentBalance   float64 `json:"current_balance"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
}

// GetDashboardStats returns the dashboard overview
func (s *AnalyticsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthSales, err := s.saleRepo.ListInRange(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	for _, sale := range monthSales {
		stats.MonthRevenue += float64(sale.TotalAmount) / 100
		stats.MonthProfit += float64(sale.TotalProfit) / 100
		if !sale.SaleDate.Before(dayStart) {
			stats.TodayRevenue += float64(sale.TotalAmount) / 100
			stats.TodayProfit += float64(sale.TotalProfit) / 100
			stats.TodaySalesCount++
		}
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var stockValue int64
	for i := range products {
		stockValue += products[i].StockValue()
	}
	stats.StockValue = float64(stockValue) / 100

	pendingCount, outstanding, err := s.debtRepo.PendingTotals(ctx)
	if err != nil {
		return nil, err
	}
	stats.PendingDebts = pendingCount
	stats.OutstandingDebts = float64(outstanding) / 100

	totals, err := s.transactionRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	stats.CurrentBalance = float64(totals.Balance()) / 100
	stats.TotalIncome = float64(totals.Income) / 100
	stats.TotalExpense = float64(totals.Expense) / 100

	return stats, nil
}

// SalesPoint represents revenue and profit for one period
type SalesPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Count   int     `json:"count"`
}

// GetSalesSeries returns revenue and profit bucketed per day or per month
// between two dates. Interval is "daily" or "monthly".
func (s *AnalyticsService) GetSalesSeries(ctx context.Context, from, to time.Time, interval string) ([]SalesPoint, error) {
	layout := "2006-01-02"
	if interval == "monthly" {
		layout = "2006-01"
	}

	sales, err := s.saleRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*SalesPoint)
	for _, sale := range sales {
		period := sale.SaleDate.Format(layout)
		point, ok := buckets[period]
		if !ok {
			point = &SalesPoint{Period: period}
			buckets[period] = point
		}
		point.Revenue += float64(sale.TotalAmount) / 100
		point.Profit += float64(sale.TotalProfit) / 100
		point.Count++
	}

	series := make([]SalesPoint, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })

	return series, nil
}

// ProductSales represents sales aggregated per product
type ProductSales struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
	Profit       float64   `json:"profit"`
}

// GetTopProducts returns the best-selling products by revenue in a range
func (s *AnalyticsService) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error) {
	if limit <= 0 {
		limit = 5
	}

	sales, err := s.saleRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[uuid.UUID]*ProductSales)
	for _, sale := range sales {
		for i := range sale.Items {
			item := &sale.Items[i]
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = entry
			}
			entry.QuantitySold += item.Quantity
			entry.Revenue += float64(item.Total) / 100
			entry.Profit += float64(item.Profit()) / 100
		}
	}

	ranked := make([]ProductSales, 0, len(byProduct))
	for _, entry := range byProduct {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// PaymentSplit represents paid versus credit sales in a range
type PaymentSplit struct {
	PaidCount int     `json:"paid_count"`
	PaidTotal float64 `json:"paid_total"`
	DebtCount int     `json:"debt_count"`
	DebtTotal float64 `json:"debt_total"`
}

// GetPaymentSplit breaks sales in a range down by payment type
func (s *AnalyticsService) GetPaymentSplit(ctx context.Context, from, to time.Time) (*PaymentSplit, error) {
	sales, err := s.saleRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	split := &PaymentSplit{}
	for _, sale := range sales {
		if sale.PaymentType == enum.PaymentTypeDebt {
			split.DebtCount++
			split.DebtTotal += float64(sale.TotalAmount) / 100
		} else {
			split.PaidCount++
			split.PaidTotal += float64(sale.TotalAmount) / 100
		}
	}
	return split, nil
}

// CategoryStock represents the catalogue grouped by category
type CategoryStock struct {
	Category     string  `json:"category"`
	ProductCount int     `json:"product_count"`
	UnitsInStock int     `json:"units_in_stock"`
	StockValue   float64 `json:"stock_value"`
}

// GetCategoryDistribution groups the catalogue by category
func (s *AnalyticsService) GetCategoryDistribution(ctx context.Context) ([]CategoryStock, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*CategoryStock)
	for i := range products {
		product := &products[i]
		category := product.Category
		if category == "" {
			category = "uncategorized"
		}
		entry, ok := byCategory[category]
		if !ok {
			entry = &CategoryStock{Category: category}
			byCategory[category] = entry
		}
		entry.ProductCount++
		entry.UnitsInStock += product.Quantity
		entry.StockValue += float64(product.StockValue()) / 100
	}

	distribution := make([]CategoryStock, 0, len(byCategory))
	for _, entry := range byCategory {
		distribution = append(distribution, *entry)
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].Category < distribution[j].Category })

	return distribution, nil
}
