package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new product history repository
func NewHistoryRepository(db *gorm.DB) domainRepo.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, entry *entity.ProductHistory) error {
	return conn(ctx, r.db).Create(entry).Error
}

func (r *historyRepository) ListByProduct(ctx context.Context, productID uuid.UUID, params *pagination.PaginationParams) ([]entity.ProductHistory, int64, error) {
	var entries []entity.ProductHistory
	var total int64

	query := conn(ctx, r.db).Model(&entity.ProductHistory{}).Where("product_id = ?", productID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&entries).Error

	return entries, total, err
}
