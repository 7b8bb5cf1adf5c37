package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/apperror"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

func TestCreateProduct(t *testing.T) {
	// GIVEN: valid product input
	// WHEN: creating the product
	// THEN: it is stored with prices in cents and an opening history entry

	env := newTestEnv(t)
	ctx := context.Background()

	product, err := env.inventory.CreateProduct(ctx, &CreateProductInput{
		Name:          "Palm Oil 1L",
		Category:      "cooking",
		Quantity:      12,
		QuantityAlert: 3,
		BuyingPrice:   8.50,
		SellingPrice:  11.00,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(850), product.BuyingPrice)
	assert.Equal(t, int64(1100), product.SellingPrice)
	assert.NotEmpty(t, product.Code)
	assert.Equal(t, int64(250), product.UnitProfit())

	history, err := env.inventory.GetProductHistory(ctx, product.ID, nil)
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, enum.HistoryTypeCreated, history.Items[0].Type)
	assert.Equal(t, 12, history.Items[0].QuantityDelta)
}

func TestCreateProduct_InvalidPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Selling at a loss
	_, err := env.inventory.CreateProduct(ctx, &CreateProductInput{
		Name: "Palm Oil 1L", BuyingPrice: 10.00, SellingPrice: 9.00,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidPrice))

	// Selling at cost
	_, err = env.inventory.CreateProduct(ctx, &CreateProductInput{
		Name: "Palm Oil 1L", BuyingPrice: 10.00, SellingPrice: 10.00,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidPrice))
}

func TestCreateProduct_DuplicateCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.inventory.CreateProduct(ctx, &CreateProductInput{
		Name: "Palm Oil 1L", Code: "OIL-1", BuyingPrice: 8.50, SellingPrice: 11.00,
	})
	require.NoError(t, err)

	_, err = env.inventory.CreateProduct(ctx, &CreateProductInput{
		Name: "Palm Oil 2L", Code: "OIL-1", BuyingPrice: 15.00, SellingPrice: 19.00,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateProduct_PriceInvariantHolds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	// Raising the buying price above the selling price is rejected
	newBuying := 5.00
	_, err := env.inventory.UpdateProduct(ctx, product.ID, &UpdateProductInput{BuyingPrice: &newBuying})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidPrice))
}

func TestRestock(t *testing.T) {
	// GIVEN: an opening balance that covers the purchase
	// WHEN: restocking 5 units at 2.00 buying price
	// THEN: stock rises, the cost is an expense and history records it

	env := newTestEnv(t)
	ctx := context.Background()
	env.seedOpeningBalance(t, 100.00)
	product := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	restocked, err := env.inventory.Restock(ctx, product.ID, &RestockInput{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, restocked.Quantity)

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), totals.Expense)
	assert.Equal(t, int64(9000), totals.Balance())

	history, err := env.inventory.GetProductHistory(ctx, product.ID, nil)
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, enum.HistoryTypeRestock, history.Items[0].Type)
	assert.Equal(t, 5, history.Items[0].QuantityDelta)
	assert.Equal(t, int64(1000), history.Items[0].Amount)
}

func TestRestock_InsufficientFunds(t *testing.T) {
	// GIVEN: an empty ledger
	// WHEN: restocking
	// THEN: the purchase is rejected and stock does not change

	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	_, err := env.inventory.Restock(ctx, product.ID, &RestockInput{Quantity: 5})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientFunds))

	after, err := env.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, after.Quantity)
}

func TestGetLowStockProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low := env.seedProduct(t, "soap", 1, 2.00, 3.50) // alert threshold is 2
	env.seedProduct(t, "rice", 50, 10.00, 14.00)

	products, err := env.inventory.GetLowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}

func TestListProducts_SearchAndPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "soap", 10, 2.00, 3.50)
	env.seedProduct(t, "rice", 5, 10.00, 14.00)
	env.seedProduct(t, "soda", 20, 1.00, 1.80)

	result, err := env.inventory.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Pagination.Total)

	page, err := env.inventory.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Search:     "so",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.Total)
}
