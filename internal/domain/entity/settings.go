package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanySettings holds the shop's display profile. A single row exists;
// it is created with defaults on first read.
type CompanySettings struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName    string         `gorm:"size:255;default:'My Shop'" json:"company_name"`
	CompanyDetails string         `gorm:"type:text" json:"company_details"`
	CompanyImage   *string        `gorm:"size:255" json:"company_image,omitempty"`
	Currency       string         `gorm:"size:10;default:'NGN'" json:"currency"`
	Timezone       string         `gorm:"size:50;default:'Africa/Lagos'" json:"timezone"`
	LowStockAlerts bool           `gorm:"default:true" json:"low_stock_alerts"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *CompanySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}
