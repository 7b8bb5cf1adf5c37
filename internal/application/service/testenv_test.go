package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	infraRepo "github.com/shopbook/shopbook-api/internal/infrastructure/repository"
)

// testEnv wires the full service stack over an in-memory database so the
// transaction and cascade behavior is exercised for real.
type testEnv struct {
	db *gorm.DB

	productRepo     domainRepo.ProductRepository
	historyRepo     domainRepo.HistoryRepository
	saleRepo        domainRepo.SaleRepository
	debtRepo        domainRepo.DebtRepository
	transactionRepo domainRepo.TransactionRepository
	settingsRepo    domainRepo.SettingsRepository
	userRepo        domainRepo.UserRepository

	ledger    *LedgerService
	inventory *InventoryService
	sales     *SalesService
	debts     *DebtService
	analytics *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.ProductHistory{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Debt{},
		&entity.DebtDeposit{},
		&entity.Transaction{},
		&entity.CompanySettings{},
	))

	env := &testEnv{
		db:              db,
		productRepo:     infraRepo.NewProductRepository(db),
		historyRepo:     infraRepo.NewHistoryRepository(db),
		saleRepo:        infraRepo.NewSaleRepository(db),
		debtRepo:        infraRepo.NewDebtRepository(db),
		transactionRepo: infraRepo.NewTransactionRepository(db),
		settingsRepo:    infraRepo.NewSettingsRepository(db),
		userRepo:        infraRepo.NewUserRepository(db),
	}

	txManager := infraRepo.NewTxManager(db)
	env.ledger = NewLedgerService(env.transactionRepo)
	env.inventory = NewInventoryService(env.productRepo, env.historyRepo, env.ledger, txManager)
	env.sales = NewSalesService(env.saleRepo, env.productRepo, env.debtRepo, env.historyRepo, env.ledger, txManager)
	env.debts = NewDebtService(env.debtRepo, env.sales, env.ledger, txManager)
	env.analytics = NewAnalyticsService(env.saleRepo, env.productRepo, env.debtRepo, env.transactionRepo)

	return env
}

// seedProduct inserts a product directly, bypassing the funds check
func (env *testEnv) seedProduct(t *testing.T, name string, quantity int, buyingPrice, sellingPrice float64) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:          name,
		Code:          "TEST-" + name,
		Category:      "general",
		Quantity:      quantity,
		QuantityAlert: 2,
		BuyingPrice:   toCents(buyingPrice),
		SellingPrice:  toCents(sellingPrice),
	}
	require.NoError(t, env.productRepo.Create(context.Background(), product))
	return product
}

// seedOpeningBalance posts the capital entry so expenses can be paid
func (env *testEnv) seedOpeningBalance(t *testing.T, amount float64) {
	t.Helper()

	_, err := env.ledger.SetOpeningBalance(context.Background(), &SetOpeningBalanceInput{Amount: amount})
	require.NoError(t, err)
}
