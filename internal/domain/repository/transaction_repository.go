package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// LedgerTotals aggregates the ledger by transaction type, in cents.
// Capital counts towards income when computing the current balance.
type LedgerTotals struct {
	Income              int64
	Expense             int64
	Capital             int64
	UnsettledReceivable int64
}

// Balance returns income + capital - expense in cents
func (t LedgerTotals) Balance() int64 {
	return t.Income + t.Capital - t.Expense
}

// TransactionRepository defines the interface for ledger data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// GetUnsettledReceivable returns the open accounts-receivable entry for a
	// sale, nil when none exists. At most one exists per debt sale.
	GetUnsettledReceivable(ctx context.Context, saleID uuid.UUID) (*entity.Transaction, error)
	Totals(ctx context.Context) (*LedgerTotals, error)
	// HasCapital reports whether an opening-balance entry has been posted
	HasCapital(ctx context.Context) (bool, error)
}

// TransactionFilterParams contains filtering parameters for ledger queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.TransactionType
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
