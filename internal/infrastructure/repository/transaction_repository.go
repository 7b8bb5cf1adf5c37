package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Create(transaction).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := conn(ctx, r.db).First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Save(transaction).Error
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.Transaction{})

	if params.Search != "" {
		query = query.Where("description LIKE ? OR category LIKE ? OR reference LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "date"
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
		Order(sortBy + " " + sortOrder).
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) GetUnsettledReceivable(ctx context.Context, saleID uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := conn(ctx, r.db).
		Where("type = ? AND sale_id = ? AND settled = ?", enum.TransactionTypeReceivable, saleID, false).
		First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) Totals(ctx context.Context) (*domainRepo.LedgerTotals, error) {
	totals := &domainRepo.LedgerTotals{}

	type row struct {
		Type   enum.TransactionType
		Amount int64
	}
	var rows []row

	err := conn(ctx, r.db).Model(&entity.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS amount").
		Where("type <> ? OR settled = ?", enum.TransactionTypeReceivable, false).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		switch r.Type {
		case enum.TransactionTypeIncome:
			totals.Income = r.Amount
		case enum.TransactionTypeExpense:
			totals.Expense = r.Amount
		case enum.TransactionTypeCapital:
			totals.Capital = r.Amount
		case enum.TransactionTypeReceivable:
			totals.UnsettledReceivable = r.Amount
		}
	}

	return totals, nil
}

func (r *transactionRepository) HasCapital(ctx context.Context) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Transaction{}).
		Where("type = ?", enum.TransactionTypeCapital).
		Count(&count).Error
	return count > 0, err
}
