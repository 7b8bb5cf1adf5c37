package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	// Items are created through the association in the same insert.
	return conn(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := conn(ctx, r.db).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := conn(ctx, r.db).Preload("Items").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return conn(ctx, r.db).Omit("Items").Save(sale).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := conn(ctx, r.db).Model(&entity.Sale{})

	if params.Search != "" {
		query = query.Where("customer_name LIKE ? OR receipt_no LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.PaymentType != nil {
		query = query.Where("payment_type = ?", *params.PaymentType)
	}

	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := conn(ctx, r.db).Preload("Items")
	if !from.IsZero() {
		query = query.Where("sale_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("sale_date <= ?", to)
	}
	err := query.Order("sale_date ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Sale{}).Count(&total).Error
	return total, err
}
