package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// Create persists the sale together with its line items.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithItems retrieves a sale with its line items preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListInRange returns all sales with items between two dates (analytics)
	ListInRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	Count(ctx context.Context) (int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	PaymentType *enum.PaymentType
	StartDate   *time.Time
	EndDate     *time.Time
	SortBy      string
	SortOrder   string
}
