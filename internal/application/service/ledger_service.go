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
	"github.com/shopbook/shopbook-api/pkg/utils"
)

// Ledger transaction categories
const (
	CategorySales          = "sales"
	CategoryDebtPayment    = "debt-payment"
	CategoryRestock        = "restock"
	CategoryOpeningBalance = "opening-balance"
)

// LedgerService handles the financial ledger: every cash movement in the
// shop flows through here so the current balance always reconciles with
// sales, deposits and restocks.
type LedgerService struct {
	transactionRepo repository.TransactionRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(transactionRepo repository.TransactionRepository) *LedgerService {
	return &LedgerService{transactionRepo: transactionRepo}
}

// PostSaleIncome records the cash received for a fully paid sale
func (s *LedgerService) PostSaleIncome(ctx context.Context, sale *entity.Sale) error {
	productIDs := make([]uuid.UUID, 0, len(sale.Items))
	for _, item := range sale.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	return s.transactionRepo.Create(ctx, &entity.Transaction{
		Type:            enum.TransactionTypeIncome,
		Category:        CategorySales,
		Amount:          sale.TotalAmount,
		Date:            sale.SaleDate,
		Description:     "Sale " + sale.ReceiptNo,
		Reference:       sale.ReceiptNo,
		SaleID:          &sale.ID,
		RelatedProducts: productIDs,
	})
}

// PostReceivable records the outstanding amount of a debt sale. The entry
// stays unsettled until the linked debt is cleared.
func (s *LedgerService) PostReceivable(ctx context.Context, sale *entity.Sale) error {
	productIDs := make([]uuid.UUID, 0, len(sale.Items))
	for _, item := range sale.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	return s.transactionRepo.Create(ctx, &entity.Transaction{
		Type:            enum.TransactionTypeReceivable,
		Category:        CategorySales,
		Amount:          sale.TotalAmount,
		Date:            sale.SaleDate,
		Description:     "Credit sale " + sale.ReceiptNo,
		Reference:       sale.ReceiptNo,
		SaleID:          &sale.ID,
		RelatedProducts: productIDs,
	})
}

// PostDebtPayment records cash received against a debt, whether an initial
// deposit at sale time, a later partial deposit, or a final payoff.
func (s *LedgerService) PostDebtPayment(ctx context.Context, debt *entity.Debt, amount int64, date time.Time) error {
	return s.transactionRepo.Create(ctx, &entity.Transaction{
		Type:        enum.TransactionTypeIncome,
		Category:    CategoryDebtPayment,
		Amount:      amount,
		Date:        date,
		Description: "Debt payment from " + debt.CustomerName,
		Reference:   utils.GenerateReferenceNo("PAY"),
		SaleID:      debt.SaleID,
	})
}

// SettleReceivable flips the open receivable for a sale to settled. The
// entry itself is preserved for the audit trail; the income was already
// posted deposit by deposit. No-op when no open receivable exists.
func (s *LedgerService) SettleReceivable(ctx context.Context, saleID uuid.UUID) error {
	receivable, err := s.transactionRepo.GetUnsettledReceivable(ctx, saleID)
	if err != nil {
		return err
	}
	if receivable == nil {
		return nil
	}

	receivable.Settled = true
	return s.transactionRepo.Update(ctx, receivable)
}

// PostRestockExpense records the cost of a stock purchase
func (s *LedgerService) PostRestockExpense(ctx context.Context, product *entity.Product, quantity int, cost int64, date time.Time) error {
	return s.transactionRepo.Create(ctx, &entity.Transaction{
		Type:            enum.TransactionTypeExpense,
		Category:        CategoryRestock,
		Amount:          cost,
		Date:            date,
		Description:     "Restocked " + product.Name,
		Reference:       utils.GenerateReferenceNo("EXP"),
		RelatedProducts: []uuid.UUID{product.ID},
	})
}

// SetOpeningBalanceInput represents the opening balance input
type SetOpeningBalanceInput struct {
	Amount      float64
	Date        time.Time
	Description string
}

// SetOpeningBalance posts the one-time capital entry the ledger starts
// from. A second attempt is rejected so the balance stays auditable.
func (s *LedgerService) SetOpeningBalance(ctx context.Context, input *SetOpeningBalanceInput) (*entity.Transaction, error) {
	amount := toCents(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Opening balance must be greater than zero")
	}

	exists, err := s.transactionRepo.HasCapital(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("Opening balance has already been set")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	description := input.Description
	if description == "" {
		description = "Opening balance"
	}

	transaction := &entity.Transaction{
		Type:        enum.TransactionTypeCapital,
		Category:    CategoryOpeningBalance,
		Amount:      amount,
		Date:        date,
		Description: description,
		Reference:   utils.GenerateReferenceNo("CAP"),
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// AddTransactionInput represents a manual ledger entry input
type AddTransactionInput struct {
	Type          enum.TransactionType
	Category      string
	Amount        float64
	Date          time.Time
	Description   string
	PaymentMethod string
}

// AddTransaction records a manual income or expense entry. Receivable and
// capital entries are system-managed and cannot be created by hand.
func (s *LedgerService) AddTransaction(ctx context.Context, input *AddTransactionInput) (*entity.Transaction, error) {
	if input.Type != enum.TransactionTypeIncome && input.Type != enum.TransactionTypeExpense {
		return nil, apperror.NewBadRequestError("Only income and expense entries can be added manually")
	}

	amount := toCents(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}
	if input.Category == "" {
		return nil, apperror.NewRequiredFieldError("category")
	}

	if input.Type == enum.TransactionTypeExpense {
		balance, err := s.CurrentBalance(ctx)
		if err != nil {
			return nil, err
		}
		if amount > balance {
			return nil, apperror.NewInsufficientFundsError("Expense exceeds the current balance")
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	transaction := &entity.Transaction{
		Type:          input.Type,
		Category:      input.Category,
		Amount:        amount,
		Date:          date,
		Description:   input.Description,
		PaymentMethod: paymentMethod,
		Reference:     utils.GenerateReferenceNo("TXN"),
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// CurrentBalance returns income + capital - expense in cents
func (s *LedgerService) CurrentBalance(ctx context.Context) (int64, error) {
	totals, err := s.transactionRepo.Totals(ctx)
	if err != nil {
		return 0, err
	}
	return totals.Balance(), nil
}

// Summary returns the ledger totals grouped by transaction type
func (s *LedgerService) Summary(ctx context.Context) (*repository.LedgerTotals, error) {
	return s.transactionRepo.Totals(ctx)
}

// HasOpeningBalance reports whether the capital entry has been posted
func (s *LedgerService) HasOpeningBalance(ctx context.Context) (bool, error) {
	return s.transactionRepo.HasCapital(ctx)
}

// ListTransactions retrieves ledger entries with filtering and pagination
func (s *LedgerService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params == nil {
		params = &repository.TransactionFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		transactions,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}
