package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ProductHistory is an append-only audit entry recording a stock movement:
// product creation, a restock, or a sale. Consumed only for display.
type ProductHistory struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Type          enum.HistoryType `gorm:"not null" json:"type"`
	QuantityDelta int              `gorm:"not null" json:"quantity_delta"`
	Amount        int64            `gorm:"default:0" json:"-"` // Stored in cents
	Description   string           `gorm:"type:text" json:"description"`
	Date          time.Time        `gorm:"type:date;not null;index" json:"date"`
	CreatedAt     time.Time        `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new history entry
func (h *ProductHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductHistory model
func (ProductHistory) TableName() string {
	return "product_history"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (h ProductHistory) MarshalJSON() ([]byte, error) {
	type Alias ProductHistory
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(h),
		Amount: float64(h.Amount) / 100,
	})
}
