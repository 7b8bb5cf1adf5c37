package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a checkout: one or more line items sold together under a
// single receipt. Line items are immutable after creation; only the payment
// type may later flip from debt to paid when the linked debt settles.
type Sale struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo      string           `gorm:"size:100;unique;not null" json:"receipt_no"`
	CustomerName   string           `gorm:"size:255;not null" json:"customer_name"`
	PhoneNumber    string           `gorm:"size:50" json:"phone_number"`
	Address        string           `gorm:"size:255" json:"address"`
	PaymentType    enum.PaymentType `gorm:"default:0;index" json:"payment_type"`
	SaleDate       time.Time        `gorm:"type:date;not null;index" json:"sale_date"`
	Discount       int64            `gorm:"default:0" json:"-"` // Stored in cents
	InitialDeposit int64            `gorm:"default:0" json:"-"` // Stored in cents, debt sales only
	TotalAmount    int64            `gorm:"not null" json:"-"`  // Stored in cents, subtotal - discount
	TotalProfit    int64            `gorm:"not null" json:"-"`  // Stored in cents
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Subtotal returns the pre-discount total in cents
func (s *Sale) Subtotal() int64 {
	return s.TotalAmount + s.Discount
}

// IsPaid reports whether the sale has been fully paid for
func (s *Sale) IsPaid() bool {
	return s.PaymentType == enum.PaymentTypePaid
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Discount       float64 `json:"discount"`
		InitialDeposit float64 `json:"initial_deposit"`
		TotalAmount    float64 `json:"total_amount"`
		TotalProfit    float64 `json:"total_profit"`
	}{
		Alias:          Alias(s),
		Discount:       float64(s.Discount) / 100,
		InitialDeposit: float64(s.InitialDeposit) / 100,
		TotalAmount:    float64(s.TotalAmount) / 100,
		TotalProfit:    float64(s.TotalProfit) / 100,
	})
}

// SaleItem represents a single product line in a sale. Unit price and buying
// price are snapshots taken at sale time so later product edits do not
// rewrite sales history.
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents
	BuyingPrice int64          `gorm:"not null" json:"-"` // Stored in cents, at time of sale
	Quantity    int            `gorm:"not null" json:"quantity"`
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// Profit returns the line profit in cents
func (si *SaleItem) Profit() int64 {
	return (si.UnitPrice - si.BuyingPrice) * int64(si.Quantity)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice   float64 `json:"unit_price"`
		BuyingPrice float64 `json:"buying_price"`
		Total       float64 `json:"total"`
	}{
		Alias:       Alias(si),
		UnitPrice:   float64(si.UnitPrice) / 100,
		BuyingPrice: float64(si.BuyingPrice) / 100,
		Total:       float64(si.Total) / 100,
	})
}
