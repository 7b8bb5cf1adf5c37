package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// DebtRepository defines the interface for debt data operations
type DebtRepository interface {
	// Create persists the debt together with any seeded deposits.
	Create(ctx context.Context, debt *entity.Debt) error
	// GetByID retrieves a debt with its deposits preloaded
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Debt, error)
	Update(ctx context.Context, debt *entity.Debt) error
	AddDeposit(ctx context.Context, deposit *entity.DebtDeposit) error
	List(ctx context.Context, params *DebtFilterParams) ([]entity.Debt, int64, error)
	// ListOverdue returns pending debts whose due date is before asOf
	ListOverdue(ctx context.Context, asOf time.Time) ([]entity.Debt, error)
	Count(ctx context.Context) (int64, error)
	// PendingTotals returns the number of pending debts and the sum of
	// their remaining balances in cents
	PendingTotals(ctx context.Context) (int64, int64, error)
}

// DebtFilterParams contains filtering parameters for debt queries
type DebtFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.DebtStatus
	SortBy     string
	SortOrder  string
}
