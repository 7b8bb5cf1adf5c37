package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
	// DecrementStock atomically decrements stock only if sufficient quantity
	// exists. Returns (false, nil) when stock is insufficient; quantity can
	// never go below zero by construction of the conditional update.
	DecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	// IncrementStock atomically adds quantity to stock (restocks).
	IncrementStock(ctx context.Context, id uuid.UUID, amount int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}
