package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := conn(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name LIKE ? OR code LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.LowStock {
		query = query.Where("quantity <= quantity_alert")
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
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).
		Where("quantity <= quantity_alert").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Product{}).Count(&total).Error
	return total, err
}

// DecrementStock decrements stock only when enough quantity exists.
// Uses: UPDATE products SET quantity = quantity - amount WHERE id = ? AND quantity >= amount
func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	result := conn(ctx, r.db).Model(&entity.Product{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return false, result.Error
	}

	// No rows affected means insufficient stock
	return result.RowsAffected > 0, nil
}

func (r *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	return conn(ctx, r.db).Model(&entity.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount)).Error
}
