package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// HistoryRepository defines the interface for product history operations.
// History is append-only; entries are never updated or deleted.
type HistoryRepository interface {
	Create(ctx context.Context, entry *entity.ProductHistory) error
	ListByProduct(ctx context.Context, productID uuid.UUID, params *pagination.PaginationParams) ([]entity.ProductHistory, int64, error)
}
