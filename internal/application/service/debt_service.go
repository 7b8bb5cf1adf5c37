package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/apperror"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// saleSettler marks a credit sale as paid once its debt clears
type saleSettler interface {
	MarkSalePaid(ctx context.Context, saleID uuid.UUID) error
}

// financialLedger is the slice of the ledger the debt book needs: cash
// received against debts, and closing the receivable on full payoff.
type financialLedger interface {
	PostDebtPayment(ctx context.Context, debt *entity.Debt, amount int64, date time.Time) error
	SettleReceivable(ctx context.Context, saleID uuid.UUID) error
}

// DebtService handles the debt book: manual debts, deposits against
// outstanding balances, and the settlement cascade back into sales and
// the financial ledger.
type DebtService struct {
	debtRepo  repository.DebtRepository
	sales     saleSettler
	ledger    financialLedger
	txManager repository.TxManager
}

// NewDebtService creates a new debt service
func NewDebtService(
	debtRepo repository.DebtRepository,
	sales saleSettler,
	ledger financialLedger,
	txManager repository.TxManager,
) *DebtService {
	return &DebtService{
		debtRepo:  debtRepo,
		sales:     sales,
		ledger:    ledger,
		txManager: txManager,
	}
}

// CreateDebtInput represents a manual debt book entry
type CreateDebtInput struct {
	CustomerName string
	PhoneNumber  string
	Amount       float64
	Date         time.Time
	DueDate      time.Time
	Description  string
}

// CreateDebt records a debt taken outside a sale, e.g. goods handed over
// before the shop started using the system.
func (s *DebtService) CreateDebt(ctx context.Context, input *CreateDebtInput) (*entity.Debt, error) {
	if input.CustomerName == "" {
		return nil, apperror.NewRequiredFieldError("customer_name")
	}
	if input.PhoneNumber == "" {
		return nil, apperror.NewRequiredFieldError("phone_number")
	}
	amount := toCents(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Debt amount must be greater than zero")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, debtDueDays)
	}

	debt := &entity.Debt{
		CustomerName:    input.CustomerName,
		PhoneNumber:     input.PhoneNumber,
		Amount:          amount,
		RemainingAmount: amount,
		Date:            date,
		DueDate:         dueDate,
		Description:     input.Description,
		Status:          enum.DebtStatusPending,
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

// AddDepositInput represents a deposit against a debt
type AddDepositInput struct {
	Amount float64
	Date   time.Time
}

// AddDeposit applies a partial payment to a debt. A deposit that clears
// the remaining balance also settles the linked sale and receivable, in
// the same transaction.
func (s *DebtService) AddDeposit(ctx context.Context, debtID uuid.UUID, input *AddDepositInput) (*entity.Debt, error) {
	amount := toCents(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Deposit amount must be greater than zero")
	}

	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}
	if amount > debt.RemainingAmount {
		return nil, apperror.NewDepositExceedsBalanceError("Deposit exceeds the remaining balance")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		deposit := &entity.DebtDeposit{
			DebtID: debt.ID,
			Amount: amount,
			Date:   date,
		}
		if err := s.debtRepo.AddDeposit(ctx, deposit); err != nil {
			return err
		}
		debt.Deposits = append(debt.Deposits, *deposit)

		debt.RemainingAmount -= amount
		if debt.RemainingAmount <= 0 {
			debt.Status = enum.DebtStatusPaid
		}
		if err := s.debtRepo.Update(ctx, debt); err != nil {
			return err
		}

		if err := s.ledger.PostDebtPayment(ctx, debt, amount, date); err != nil {
			return err
		}

		if debt.Status == enum.DebtStatusPaid && debt.SaleID != nil {
			if err := s.ledger.SettleReceivable(ctx, *debt.SaleID); err != nil {
				return err
			}
			return s.sales.MarkSalePaid(ctx, *debt.SaleID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return debt, nil
}

// MarkPaid force-closes a debt: the outstanding balance is treated as
// received in full today. Earlier deposits are kept on record. Idempotent
// for debts that are already paid.
func (s *DebtService) MarkPaid(ctx context.Context, debtID uuid.UUID) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}
	if debt.Status == enum.DebtStatusPaid {
		return debt, nil
	}

	outstanding := debt.RemainingAmount
	now := time.Now()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if outstanding > 0 {
			if err := s.ledger.PostDebtPayment(ctx, debt, outstanding, now); err != nil {
				return err
			}
		}

		debt.RemainingAmount = 0
		debt.Status = enum.DebtStatusPaid
		if err := s.debtRepo.Update(ctx, debt); err != nil {
			return err
		}

		if debt.SaleID != nil {
			if err := s.ledger.SettleReceivable(ctx, *debt.SaleID); err != nil {
				return err
			}
			return s.sales.MarkSalePaid(ctx, *debt.SaleID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return debt, nil
}

// GetDebt retrieves a debt with its deposits
func (s *DebtService) GetDebt(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}
	return debt, nil
}

// ListDebts retrieves debts with filtering and pagination
func (s *DebtService) ListDebts(ctx context.Context, params *repository.DebtFilterParams) (*pagination.PaginatedResult[entity.Debt], error) {
	if params == nil {
		params = &repository.DebtFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	debts, total, err := s.debtRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		debts,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}

// ListOverdueDebts returns pending debts past their due date
func (s *DebtService) ListOverdueDebts(ctx context.Context) ([]entity.Debt, error) {
	return s.debtRepo.ListOverdue(ctx, time.Now())
}
