package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/pkg/apperror"
)

func TestRecordSale_Paid(t *testing.T) {
	// GIVEN: two products in stock
	// WHEN: checking out a paid sale with a discount
	// THEN: totals and profit are computed, stock drops, income is posted

	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 10, 2.00, 3.50)
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Discount:     1.00,
		Items: []SaleItemInput{
			{ProductID: soap.ID, Quantity: 2}, // 7.00, profit 3.00
			{ProductID: rice.ID, Quantity: 1}, // 14.00, profit 4.00
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), sale.TotalAmount) // 21.00 - 1.00
	assert.Equal(t, int64(600), sale.TotalProfit)  // 7.00 - 1.00
	assert.Equal(t, int64(2100), sale.Subtotal())
	assert.NotEmpty(t, sale.ReceiptNo)
	assert.Len(t, sale.Items, 2)

	soapAfter, err := env.productRepo.GetByID(ctx, soap.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, soapAfter.Quantity)

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), totals.Income)
	assert.Equal(t, int64(0), totals.UnsettledReceivable)
}

func TestRecordSale_SnapshotsPrices(t *testing.T) {
	// GIVEN: a recorded sale
	// WHEN: the product's price changes afterwards
	// THEN: the sale's line items keep the prices from sale time

	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items:        []SaleItemInput{{ProductID: soap.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	newPrice := 9.00
	_, err = env.inventory.UpdateProduct(ctx, soap.ID, &UpdateProductInput{SellingPrice: &newPrice})
	require.NoError(t, err)

	reloaded, err := env.sales.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, int64(350), reloaded.Items[0].UnitPrice)
	assert.Equal(t, "soap", reloaded.Items[0].ProductName)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	// GIVEN: a product with 3 units
	// WHEN: checking out 4 units
	// THEN: the sale is rejected and nothing is written

	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 3, 2.00, 3.50)

	_, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items:        []SaleItemInput{{ProductID: soap.ID, Quantity: 4}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	soapAfter, err := env.productRepo.GetByID(ctx, soap.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, soapAfter.Quantity)

	saleCount, err := env.saleRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), saleCount)

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Income)
}

func TestRecordSale_RollsBackOnPartialStockFailure(t *testing.T) {
	// GIVEN: one product with plenty of stock and one with too little
	// WHEN: checking out both in one sale
	// THEN: neither product's stock changes

	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 10, 2.00, 3.50)
	rice := env.seedProduct(t, "rice", 1, 10.00, 14.00)

	_, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items: []SaleItemInput{
			{ProductID: soap.ID, Quantity: 5},
			{ProductID: rice.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	soapAfter, err := env.productRepo.GetByID(ctx, soap.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, soapAfter.Quantity)
}

func TestRecordSale_InvalidDiscount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	// Discount larger than the subtotal
	_, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Discount:     100.00,
		Items:        []SaleItemInput{{ProductID: soap.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidDiscount))

	// Negative discount
	_, err = env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Discount:     -1.00,
		Items:        []SaleItemInput{{ProductID: soap.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidDiscount))
}

func TestRecordSale_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items:        []SaleItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRecordSale_Debt(t *testing.T) {
	// GIVEN: a product in stock
	// WHEN: checking out on credit with an initial deposit
	// THEN: a debt is opened for the remainder, the receivable covers the
	// full total, and the deposit is posted as income

	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName:   "Bisi",
		PhoneNumber:    "0801",
		PaymentType:    enum.PaymentTypeDebt,
		InitialDeposit: 10.00,
		Items:          []SaleItemInput{{ProductID: rice.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2800), sale.TotalAmount)
	assert.Equal(t, enum.PaymentTypeDebt, sale.PaymentType)

	debt, err := env.debtRepo.GetBySaleID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, debt)
	assert.Equal(t, int64(2800), debt.Amount)
	assert.Equal(t, int64(1800), debt.RemainingAmount)
	assert.Equal(t, enum.DebtStatusPending, debt.Status)
	require.Len(t, debt.Deposits, 1)
	assert.Equal(t, int64(1000), debt.Deposits[0].Amount)

	receivable, err := env.transactionRepo.GetUnsettledReceivable(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, receivable)
	assert.Equal(t, int64(2800), receivable.Amount)

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), totals.Income)
	assert.Equal(t, int64(2800), totals.UnsettledReceivable)
}

func TestRecordSale_DebtRequiresPhoneNumber(t *testing.T) {
	env := newTestEnv(t)
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Bisi",
		PaymentType:  enum.PaymentTypeDebt,
		Items:        []SaleItemInput{{ProductID: rice.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRecordSale_DepositExceedsTotal(t *testing.T) {
	env := newTestEnv(t)
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName:   "Bisi",
		PhoneNumber:    "0801",
		PaymentType:    enum.PaymentTypeDebt,
		InitialDeposit: 100.00,
		Items:          []SaleItemInput{{ProductID: rice.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDepositExceedsBalance))
}

func TestRecordSale_DepositCoveringTotalSettlesImmediately(t *testing.T) {
	// GIVEN: a credit sale whose deposit equals the total
	// WHEN: the sale is recorded
	// THEN: the debt is born paid, the receivable is settled and the sale
	// is flipped to paid

	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName:   "Bisi",
		PhoneNumber:    "0801",
		PaymentType:    enum.PaymentTypeDebt,
		InitialDeposit: 14.00,
		Items:          []SaleItemInput{{ProductID: rice.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentTypePaid, sale.PaymentType)

	debt, err := env.debtRepo.GetBySaleID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, debt)
	assert.Equal(t, enum.DebtStatusPaid, debt.Status)
	assert.Equal(t, int64(0), debt.RemainingAmount)

	receivable, err := env.transactionRepo.GetUnsettledReceivable(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, receivable)
}

func TestMarkSalePaid_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	soap := env.seedProduct(t, "soap", 10, 2.00, 3.50)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Ada",
		PaymentType:  enum.PaymentTypePaid,
		Items:        []SaleItemInput{{ProductID: soap.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.sales.MarkSalePaid(ctx, sale.ID))
	require.NoError(t, env.sales.MarkSalePaid(ctx, sale.ID))
}
