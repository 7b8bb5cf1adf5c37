package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents a single entry in the financial ledger. Entries are
// append-only: a settled receivable is never rewritten, settlement instead
// flips the Settled flag and posts a fresh income entry so the audit trail
// survives.
type Transaction struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type            enum.TransactionType `gorm:"not null;index" json:"type"`
	Category        string               `gorm:"size:100;not null;index" json:"category"`
	Amount          int64                `gorm:"not null" json:"-"` // Stored in cents
	Date            time.Time            `gorm:"type:date;not null;index" json:"date"`
	Description     string               `gorm:"type:text" json:"description"`
	PaymentMethod   string               `gorm:"size:50;default:'cash'" json:"payment_method"`
	Reference       string               `gorm:"size:100;index" json:"reference"`
	SaleID          *uuid.UUID           `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	RelatedProducts []uuid.UUID          `gorm:"serializer:json" json:"related_products,omitempty"`
	Settled         bool                 `gorm:"default:false" json:"settled"` // accounts-receivable only
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "financial_transactions"
}

// GetAmountDecimal returns the amount as a decimal (for display)
func (t *Transaction) GetAmountDecimal() float64 {
	return float64(t.Amount) / 100
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(t),
		Amount: t.GetAmountDecimal(),
	})
}
