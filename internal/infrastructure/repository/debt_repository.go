package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *gorm.DB) domainRepo.DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	// Seeded deposits are created through the association in the same insert.
	return conn(ctx, r.db).Create(debt).Error
}

func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debt entity.Debt
	err := conn(ctx, r.db).
		Preload("Deposits", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&debt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *debtRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Debt, error) {
	var debt entity.Debt
	err := conn(ctx, r.db).
		Preload("Deposits", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&debt, "sale_id = ?", saleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	return conn(ctx, r.db).Omit("Deposits").Save(debt).Error
}

func (r *debtRepository) AddDeposit(ctx context.Context, deposit *entity.DebtDeposit) error {
	return conn(ctx, r.db).Create(deposit).Error
}

func (r *debtRepository) List(ctx context.Context, params *domainRepo.DebtFilterParams) ([]entity.Debt, int64, error) {
	var debts []entity.Debt
	var total int64

	query := conn(ctx, r.db).Model(&entity.Debt{})

	if params.Search != "" {
		query = query.Where("customer_name LIKE ? OR phone_number LIKE ? OR description LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
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
		Preload("Deposits", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order(sortBy + " " + sortOrder).
		Find(&debts).Error

	return debts, total, err
}

func (r *debtRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]entity.Debt, error) {
	var debts []entity.Debt
	err := conn(ctx, r.db).
		Where("status = ? AND due_date < ?", enum.DebtStatusPending, asOf).
		Preload("Deposits", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("due_date ASC").
		Find(&debts).Error
	return debts, err
}

func (r *debtRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Debt{}).Count(&total).Error
	return total, err
}

func (r *debtRepository) PendingTotals(ctx context.Context) (int64, int64, error) {
	type row struct {
		Count int64
		Total int64
	}
	var result row
	err := conn(ctx, r.db).Model(&entity.Debt{}).
		Select("COUNT(*) AS count, COALESCE(SUM(remaining_amount), 0) AS total").
		Where("status = ?", enum.DebtStatusPending).
		Scan(&result).Error
	return result.Count, result.Total, err
}
