package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/apperror"
	"github.com/shopbook/shopbook-api/pkg/pagination"
	"github.com/shopbook/shopbook-api/pkg/utils"
)

// InventoryService handles product catalogue and stock operations
type InventoryService struct {
	productRepo repository.ProductRepository
	historyRepo repository.HistoryRepository
	ledger      *LedgerService
	txManager   repository.TxManager
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	productRepo repository.ProductRepository,
	historyRepo repository.HistoryRepository,
	ledger *LedgerService,
	txManager repository.TxManager,
) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		historyRepo: historyRepo,
		ledger:      ledger,
		txManager:   txManager,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Code          string
	Category      string
	Quantity      int
	QuantityAlert int
	BuyingPrice   float64
	SellingPrice  float64
	Notes         *string
}

// CreateProduct adds a product to the catalogue and records its opening
// stock in the product history.
func (s *InventoryService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewRequiredFieldError("name")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	buyingPrice := toCents(input.BuyingPrice)
	sellingPrice := toCents(input.SellingPrice)
	if err := validatePrices(buyingPrice, sellingPrice); err != nil {
		return nil, err
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}
	existing, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product code already in use")
	}

	product := &entity.Product{
		Name:          input.Name,
		Code:          code,
		Category:      input.Category,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		BuyingPrice:   buyingPrice,
		SellingPrice:  sellingPrice,
		Notes:         input.Notes,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.productRepo.Create(ctx, product); err != nil {
			return err
		}
		return s.historyRepo.Create(ctx, &entity.ProductHistory{
			ProductID:     product.ID,
			Type:          enum.HistoryTypeCreated,
			QuantityDelta: product.Quantity,
			Amount:        product.BuyingPrice * int64(product.Quantity),
			Description:   fmt.Sprintf("Product created with %d units", product.Quantity),
			Date:          time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged; stock quantity is only changed through Restock and sales.
type UpdateProductInput struct {
	Name          *string
	Category      *string
	QuantityAlert *int
	BuyingPrice   *float64
	SellingPrice  *float64
	Notes         *string
}

// UpdateProduct updates catalogue fields of an existing product
func (s *InventoryService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewRequiredFieldError("name")
		}
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.BuyingPrice != nil {
		product.BuyingPrice = toCents(*input.BuyingPrice)
	}
	if input.SellingPrice != nil {
		product.SellingPrice = toCents(*input.SellingPrice)
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := validatePrices(product.BuyingPrice, product.SellingPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// RestockInput represents the restock input
type RestockInput struct {
	Quantity int
	Date     time.Time
}

// Restock purchases additional units of a product at its buying price. The
// cost is paid out of the ledger balance, so a restock the shop cannot
// afford is rejected before any stock moves.
func (s *InventoryService) Restock(ctx context.Context, id uuid.UUID, input *RestockInput) (*entity.Product, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Restock quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	cost := product.BuyingPrice * int64(input.Quantity)
	balance, err := s.ledger.CurrentBalance(ctx)
	if err != nil {
		return nil, err
	}
	if cost > balance {
		return nil, apperror.NewInsufficientFundsError(
			fmt.Sprintf("Restocking %s costs %.2f but only %.2f is available", product.Name, float64(cost)/100, float64(balance)/100))
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.productRepo.IncrementStock(ctx, product.ID, input.Quantity); err != nil {
			return err
		}
		if err := s.historyRepo.Create(ctx, &entity.ProductHistory{
			ProductID:     product.ID,
			Type:          enum.HistoryTypeRestock,
			QuantityDelta: input.Quantity,
			Amount:        cost,
			Description:   fmt.Sprintf("Restocked %d units", input.Quantity),
			Date:          date,
		}); err != nil {
			return err
		}
		return s.ledger.PostRestockExpense(ctx, product, input.Quantity, cost, date)
	})
	if err != nil {
		return nil, err
	}

	product.Quantity += input.Quantity
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *InventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts retrieves products with filtering and pagination
func (s *InventoryService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = &repository.ProductFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		products,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *InventoryService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetProductHistory retrieves the stock movement history of a product
func (s *InventoryService) GetProductHistory(ctx context.Context, id uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ProductHistory], error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	entries, total, err := s.historyRepo.ListByProduct(ctx, id, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		entries,
		pagination.NewPagination(params.Page, params.PerPage, total),
	), nil
}

// DeleteProduct removes a product from the catalogue. Sales history keeps
// its own name and price snapshots, so past receipts stay intact.
func (s *InventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

func validatePrices(buyingPrice, sellingPrice int64) error {
	if buyingPrice <= 0 {
		return apperror.NewInvalidPriceError("Buying price must be greater than zero")
	}
	if sellingPrice <= buyingPrice {
		return apperror.NewInvalidPriceError("Selling price must be greater than the buying price")
	}
	return nil
}
