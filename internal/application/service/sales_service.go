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

// debtDueDays is how long after a credit sale the debt falls due
const debtDueDays = 30

// SalesService handles checkouts and the sales record
type SalesService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	debtRepo    repository.DebtRepository
	historyRepo repository.HistoryRepository
	ledger      *LedgerService
	txManager   repository.TxManager
}

// NewSalesService creates a new sales service
func NewSalesService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	debtRepo repository.DebtRepository,
	historyRepo repository.HistoryRepository,
	ledger *LedgerService,
	txManager repository.TxManager,
) *SalesService {
	return &SalesService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		debtRepo:    debtRepo,
		historyRepo: historyRepo,
		ledger:      ledger,
		txManager:   txManager,
	}
}

// SaleItemInput represents a cart line in a checkout
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// RecordSaleInput represents the checkout input. Prices are never taken
// from the client; each line is priced from the product catalogue.
type RecordSaleInput struct {
	CustomerName   string
	PhoneNumber    string
	Address        string
	PaymentType    enum.PaymentType
	SaleDate       time.Time
	Discount       float64
	InitialDeposit float64
	Items          []SaleItemInput
}

// RecordSale checks out a cart: stock is decremented, the sale and its
// ledger entries are written, and for a credit sale the debt record is
// opened, all in one transaction. Any failure rolls the whole sale back.
func (s *SalesService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale needs at least one item")
	}
	if input.CustomerName == "" {
		return nil, apperror.NewRequiredFieldError("customer_name")
	}
	if input.PaymentType == enum.PaymentTypeDebt && input.PhoneNumber == "" {
		return nil, apperror.NewRequiredFieldError("phone_number")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
	}

	discount := toCents(input.Discount)
	if discount < 0 {
		return nil, apperror.NewInvalidDiscountError("Discount cannot be negative")
	}
	initialDeposit := toCents(input.InitialDeposit)
	if initialDeposit < 0 {
		return nil, apperror.NewBadRequestError("Initial deposit cannot be negative")
	}
	if input.PaymentType == enum.PaymentTypePaid && initialDeposit > 0 {
		return nil, apperror.NewBadRequestError("Initial deposit only applies to credit sales")
	}

	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal, totalProfit int64
	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		lineTotal := product.SellingPrice * int64(item.Quantity)
		subtotal += lineTotal
		totalProfit += product.UnitProfit() * int64(item.Quantity)

		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.SellingPrice,
			BuyingPrice: product.BuyingPrice,
			Quantity:    item.Quantity,
			Total:       lineTotal,
		})
	}

	if discount > subtotal {
		return nil, apperror.NewInvalidDiscountError("Discount cannot exceed the sale subtotal")
	}
	totalAmount := subtotal - discount
	totalProfit -= discount

	if initialDeposit > totalAmount {
		return nil, apperror.NewDepositExceedsBalanceError("Initial deposit cannot exceed the sale total")
	}

	sale := &entity.Sale{
		ReceiptNo:      utils.GenerateReceiptNo(),
		CustomerName:   input.CustomerName,
		PhoneNumber:    input.PhoneNumber,
		Address:        input.Address,
		PaymentType:    input.PaymentType,
		SaleDate:       saleDate,
		Discount:       discount,
		InitialDeposit: initialDeposit,
		TotalAmount:    totalAmount,
		TotalProfit:    totalProfit,
		Items:          items,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range input.Items {
			product := productMap[item.ProductID]
			ok, err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStockError(
					fmt.Sprintf("Not enough stock for %s", product.Name))
			}
		}

		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for i := range sale.Items {
			item := &sale.Items[i]
			if err := s.historyRepo.Create(ctx, &entity.ProductHistory{
				ProductID:     item.ProductID,
				Type:          enum.HistoryTypeSale,
				QuantityDelta: -item.Quantity,
				Amount:        item.Total,
				Description:   fmt.Sprintf("Sold %d units on %s", item.Quantity, sale.ReceiptNo),
				Date:          saleDate,
			}); err != nil {
				return err
			}
		}

		if sale.PaymentType == enum.PaymentTypePaid {
			return s.ledger.PostSaleIncome(ctx, sale)
		}

		// Credit sale: open the debt and post the receivable for the full
		// total. A deposit taken at the counter is income right away.
		debt := entity.DebtFromSale(sale, saleDate.AddDate(0, 0, debtDueDays),
			fmt.Sprintf("Credit sale %s", sale.ReceiptNo))
		if err := s.debtRepo.Create(ctx, debt); err != nil {
			return err
		}
		if err := s.ledger.PostReceivable(ctx, sale); err != nil {
			return err
		}
		if sale.InitialDeposit > 0 {
			if err := s.ledger.PostDebtPayment(ctx, debt, sale.InitialDeposit, saleDate); err != nil {
				return err
			}
		}
		// A deposit covering the full total settles everything immediately
		if debt.Status == enum.DebtStatusPaid {
			if err := s.ledger.SettleReceivable(ctx, sale.ID); err != nil {
				return err
			}
			sale.PaymentType = enum.PaymentTypePaid
			return s.saleRepo.Update(ctx, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// MarkSalePaid flips a credit sale to paid. Idempotent: a sale that is
// already paid is left untouched.
func (s *SalesService) MarkSalePaid(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	if sale.IsPaid() {
		return nil
	}

	sale.PaymentType = enum.PaymentTypePaid
	return s.saleRepo.Update(ctx, sale)
}

// GetSale retrieves a sale with its line items
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales retrieves sales with filtering and pagination
func (s *SalesService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params == nil {
		params = &repository.SaleFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		sales,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}
