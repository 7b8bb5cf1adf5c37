package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the shop inventory
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Category      string         `gorm:"size:255;index" json:"category"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	BuyingPrice   int64          `gorm:"not null" json:"-"` // Stored in cents
	SellingPrice  int64          `gorm:"not null" json:"-"` // Stored in cents
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetBuyingPriceDecimal returns the buying price as a decimal (for display)
func (p *Product) GetBuyingPriceDecimal() float64 {
	return float64(p.BuyingPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// UnitProfit returns the per-unit profit in cents
func (p *Product) UnitProfit() int64 {
	return p.SellingPrice - p.BuyingPrice
}

// StockValue returns selling price x quantity in cents
func (p *Product) StockValue() int64 {
	return p.SellingPrice * int64(p.Quantity)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		BuyingPrice  float64 `json:"buying_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		BuyingPrice:  p.GetBuyingPriceDecimal(),
		SellingPrice: p.GetSellingPriceDecimal(),
	})
}
