package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/internal/domain/enum"
)

func seedSales(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	soap := env.seedProduct(t, "soap", 50, 2.00, 3.50)
	rice := env.seedProduct(t, "rice", 50, 10.00, 14.00)

	_, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items: []SaleItemInput{
			{ProductID: soap.ID, Quantity: 4}, // 14.00
			{ProductID: rice.ID, Quantity: 1}, // 14.00
		},
	})
	require.NoError(t, err)

	_, err = env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Bisi",
		PhoneNumber:  "0801",
		PaymentType:  enum.PaymentTypeDebt,
		Items:        []SaleItemInput{{ProductID: rice.ID, Quantity: 2}}, // 28.00
	})
	require.NoError(t, err)
}

func TestGetDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedOpeningBalance(t, 100.00)
	seedSales(t, env)

	stats, err := env.analytics.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TodaySalesCount)
	assert.InDelta(t, 56.00, stats.TodayRevenue, 0.001) // 28.00 paid + 28.00 credit
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.PendingDebts)
	assert.InDelta(t, 28.00, stats.OutstandingDebts, 0.001)
	// 100 opening + 28 paid sale income
	assert.InDelta(t, 128.00, stats.CurrentBalance, 0.001)
}

func TestGetSalesSeries_Daily(t *testing.T) {
	env := newTestEnv(t)
	seedSales(t, env)

	now := time.Now()
	series, err := env.analytics.GetSalesSeries(context.Background(), now.AddDate(0, 0, -7), now.AddDate(0, 0, 1), "daily")
	require.NoError(t, err)

	require.Len(t, series, 1)
	assert.Equal(t, now.Format("2006-01-02"), series[0].Period)
	assert.InDelta(t, 56.00, series[0].Revenue, 0.001)
	assert.Equal(t, 2, series[0].Count)
}

func TestGetTopProducts(t *testing.T) {
	env := newTestEnv(t)
	seedSales(t, env)

	now := time.Now()
	top, err := env.analytics.GetTopProducts(context.Background(), now.AddDate(0, 0, -7), now.AddDate(0, 0, 1), 5)
	require.NoError(t, err)

	require.Len(t, top, 2)
	// rice: 3 units, 42.00 revenue; soap: 4 units, 14.00 revenue
	assert.Equal(t, "rice", top[0].ProductName)
	assert.Equal(t, 3, top[0].QuantitySold)
	assert.InDelta(t, 42.00, top[0].Revenue, 0.001)
	assert.Equal(t, "soap", top[1].ProductName)
}

func TestGetPaymentSplit(t *testing.T) {
	env := newTestEnv(t)
	seedSales(t, env)

	now := time.Now()
	split, err := env.analytics.GetPaymentSplit(context.Background(), now.AddDate(0, 0, -7), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, split.PaidCount)
	assert.InDelta(t, 28.00, split.PaidTotal, 0.001)
	assert.Equal(t, 1, split.DebtCount)
	assert.InDelta(t, 28.00, split.DebtTotal, 0.001)
}

func TestGetCategoryDistribution(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "soap", 10, 2.00, 3.50)
	env.seedProduct(t, "rice", 5, 10.00, 14.00)

	distribution, err := env.analytics.GetCategoryDistribution(ctx)
	require.NoError(t, err)

	require.Len(t, distribution, 1) // both seeded as "general"
	assert.Equal(t, "general", distribution[0].Category)
	assert.Equal(t, 2, distribution[0].ProductCount)
	assert.Equal(t, 15, distribution[0].UnitsInStock)
	// 10x3.50 + 5x14.00
	assert.InDelta(t, 105.00, distribution[0].StockValue, 0.001)
}
