package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/apperror"
)

func TestSetOpeningBalance_OnlyOnce(t *testing.T) {
	// GIVEN: an empty ledger
	// WHEN: setting the opening balance twice
	// THEN: the first attempt succeeds and the second is rejected

	env := newTestEnv(t)
	ctx := context.Background()

	capital, err := env.ledger.SetOpeningBalance(ctx, &SetOpeningBalanceInput{Amount: 500.00})
	require.NoError(t, err)
	assert.Equal(t, enum.TransactionTypeCapital, capital.Type)
	assert.Equal(t, int64(50000), capital.Amount)

	_, err = env.ledger.SetOpeningBalance(ctx, &SetOpeningBalanceInput{Amount: 100.00})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	balance, err := env.ledger.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), balance)
}

func TestAddTransaction_ManualEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedOpeningBalance(t, 100.00)

	_, err := env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeIncome, Category: "other", Amount: 25.00,
	})
	require.NoError(t, err)

	_, err = env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeExpense, Category: "rent", Amount: 40.00,
	})
	require.NoError(t, err)

	balance, err := env.ledger.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8500), balance) // 100 + 25 - 40
}

func TestAddTransaction_ExpenseExceedsBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedOpeningBalance(t, 10.00)

	_, err := env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeExpense, Category: "rent", Amount: 11.00,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientFunds))
}

func TestAddTransaction_RejectsSystemTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeReceivable, Category: "sales", Amount: 10.00,
	})
	require.Error(t, err)

	_, err = env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeCapital, Category: "opening-balance", Amount: 10.00,
	})
	require.Error(t, err)
}

func TestSummary_ExcludesSettledReceivables(t *testing.T) {
	// GIVEN: a credit sale whose debt is later cleared
	// WHEN: reading the summary
	// THEN: the settled receivable no longer counts towards AR, while the
	// deposits' income does count towards the balance

	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Bisi",
		PhoneNumber:  "0801",
		PaymentType:  enum.PaymentTypeDebt,
		Items:        []SaleItemInput{{ProductID: rice.ID, Quantity: 1}}, // 14.00
	})
	require.NoError(t, err)

	summary, err := env.ledger.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1400), summary.UnsettledReceivable)

	debt, err := env.debtRepo.GetBySaleID(ctx, sale.ID)
	require.NoError(t, err)
	_, err = env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 14.00})
	require.NoError(t, err)

	summary, err = env.ledger.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.UnsettledReceivable)
	assert.Equal(t, int64(1400), summary.Income)
	assert.Equal(t, int64(1400), summary.Balance())
}

func TestListTransactions_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedOpeningBalance(t, 100.00)

	_, err := env.ledger.AddTransaction(ctx, &AddTransactionInput{
		Type: enum.TransactionTypeExpense, Category: "rent", Amount: 40.00, Description: "March rent",
	})
	require.NoError(t, err)

	expenseType := enum.TransactionTypeExpense
	result, err := env.ledger.ListTransactions(ctx, &repository.TransactionFilterParams{Type: &expenseType})
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Pagination.Total)
	assert.Equal(t, "rent", result.Items[0].Category)
	assert.Equal(t, int64(4000), result.Items[0].Amount)
}
