package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/pkg/apperror"
)

func TestCreateDebt_Manual(t *testing.T) {
	env := newTestEnv(t)

	debt, err := env.debts.CreateDebt(context.Background(), &CreateDebtInput{
		CustomerName: "Chinedu",
		PhoneNumber:  "0802",
		Amount:       50.00,
		Description:  "Goods taken on trust",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), debt.Amount)
	assert.Equal(t, int64(5000), debt.RemainingAmount)
	assert.Equal(t, enum.DebtStatusPending, debt.Status)
	assert.Nil(t, debt.SaleID)
	assert.False(t, debt.DueDate.IsZero())
}

func TestCreateDebt_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.debts.CreateDebt(ctx, &CreateDebtInput{PhoneNumber: "0802", Amount: 10})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = env.debts.CreateDebt(ctx, &CreateDebtInput{CustomerName: "Chinedu", Amount: 10})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = env.debts.CreateDebt(ctx, &CreateDebtInput{CustomerName: "Chinedu", PhoneNumber: "0802"})
	require.Error(t, err)
}

func TestAddDeposit_Partial(t *testing.T) {
	// GIVEN: a manual debt of 50.00
	// WHEN: depositing 20.00
	// THEN: 30.00 remains, the debt stays pending, the cash is income

	env := newTestEnv(t)
	ctx := context.Background()

	debt, err := env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Chinedu", PhoneNumber: "0802", Amount: 50.00,
	})
	require.NoError(t, err)

	updated, err := env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 20.00})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), updated.RemainingAmount)
	assert.Equal(t, enum.DebtStatusPending, updated.Status)
	assert.Equal(t, int64(2000), updated.TotalDeposited())

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), totals.Income)
}

func TestAddDeposit_ExceedsBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	debt, err := env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Chinedu", PhoneNumber: "0802", Amount: 50.00,
	})
	require.NoError(t, err)

	_, err = env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 51.00})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDepositExceedsBalance))

	// Nothing was written
	reloaded, err := env.debts.GetDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), reloaded.RemainingAmount)
	assert.Empty(t, reloaded.Deposits)
}

func TestAddDeposit_ClearingDebtSettlesSale(t *testing.T) {
	// GIVEN: a credit sale with an open debt
	// WHEN: deposits eventually cover the remaining balance
	// THEN: the debt flips to paid, the receivable settles and the sale
	// becomes paid, all through one deposit call

	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.seedProduct(t, "rice", 5, 10.00, 14.00)

	sale, err := env.sales.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Bisi",
		PhoneNumber:  "0801",
		PaymentType:  enum.PaymentTypeDebt,
		Items:        []SaleItemInput{{ProductID: rice.ID, Quantity: 2}}, // 28.00
	})
	require.NoError(t, err)

	debt, err := env.debtRepo.GetBySaleID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, debt)

	_, err = env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 10.00})
	require.NoError(t, err)

	cleared, err := env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 18.00})
	require.NoError(t, err)
	assert.Equal(t, enum.DebtStatusPaid, cleared.Status)
	assert.Equal(t, int64(0), cleared.RemainingAmount)

	saleAfter, err := env.saleRepo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, saleAfter.IsPaid())

	receivable, err := env.transactionRepo.GetUnsettledReceivable(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, receivable)

	// Deposits sum to the sale total, and so does the posted income
	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2800), totals.Income)
	assert.Equal(t, int64(0), totals.UnsettledReceivable)
}

func TestMarkPaid_PreservesDeposits(t *testing.T) {
	// GIVEN: a debt with one earlier deposit
	// WHEN: force-closing it
	// THEN: the deposit history survives, the outstanding amount is posted
	// as income and the remaining balance is zero

	env := newTestEnv(t)
	ctx := context.Background()

	debt, err := env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Chinedu", PhoneNumber: "0802", Amount: 50.00,
	})
	require.NoError(t, err)

	_, err = env.debts.AddDeposit(ctx, debt.ID, &AddDepositInput{Amount: 20.00})
	require.NoError(t, err)

	closed, err := env.debts.MarkPaid(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DebtStatusPaid, closed.Status)
	assert.Equal(t, int64(0), closed.RemainingAmount)
	assert.Equal(t, int64(2000), closed.TotalDeposited())

	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), totals.Income) // 20.00 deposit + 30.00 payoff
}

func TestMarkPaid_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	debt, err := env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Chinedu", PhoneNumber: "0802", Amount: 50.00,
	})
	require.NoError(t, err)

	_, err = env.debts.MarkPaid(ctx, debt.ID)
	require.NoError(t, err)
	_, err = env.debts.MarkPaid(ctx, debt.ID)
	require.NoError(t, err)

	// The payoff income is only posted once
	totals, err := env.transactionRepo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), totals.Income)
}

func TestListOverdueDebts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	nextWeek := time.Now().AddDate(0, 0, 7)

	overdue, err := env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Chinedu", PhoneNumber: "0802", Amount: 50.00, DueDate: yesterday,
	})
	require.NoError(t, err)

	_, err = env.debts.CreateDebt(ctx, &CreateDebtInput{
		CustomerName: "Bisi", PhoneNumber: "0801", Amount: 10.00, DueDate: nextWeek,
	})
	require.NoError(t, err)

	debts, err := env.debts.ListOverdueDebts(ctx)
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, overdue.ID, debts[0].ID)
	assert.True(t, debts[0].IsOverdue(time.Now()))
}

func TestDebtFromSale_SeedsInitialDeposit(t *testing.T) {
	sale := &entity.Sale{
		CustomerName:   "Bisi",
		PhoneNumber:    "0801",
		SaleDate:       time.Now(),
		TotalAmount:    2800,
		InitialDeposit: 1000,
	}
	debt := entity.DebtFromSale(sale, time.Now().AddDate(0, 0, 30), "test")
	assert.Equal(t, int64(2800), debt.Amount)
	assert.Equal(t, int64(1800), debt.RemainingAmount)
	assert.Equal(t, enum.DebtStatusPending, debt.Status)
	require.Len(t, debt.Deposits, 1)
	assert.Equal(t, int64(1000), debt.Deposits[0].Amount)
}
