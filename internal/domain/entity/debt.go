package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Debt represents a customer's outstanding receivable balance. A debt is
// created either manually from the debt book or automatically from a
// debt-type sale, in which case SaleID links back to that sale.
type Debt struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	PhoneNumber     string          `gorm:"size:50;not null" json:"phone_number"`
	Amount          int64           `gorm:"not null" json:"-"` // Stored in cents, fixed at creation
	RemainingAmount int64           `gorm:"not null" json:"-"` // Stored in cents
	Date            time.Time       `gorm:"type:date;not null" json:"date"`
	DueDate         time.Time       `gorm:"type:date" json:"due_date"`
	Description     string          `gorm:"type:text" json:"description"`
	Status          enum.DebtStatus `gorm:"default:0;index" json:"status"`
	SaleID          *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"sale_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Deposits []DebtDeposit `gorm:"foreignKey:DebtID" json:"deposits,omitempty"`
}

// BeforeCreate generates a UUID before creating a new debt
func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Debt model
func (Debt) TableName() string {
	return "debts"
}

// TotalDeposited returns the sum of all deposits in cents
func (d *Debt) TotalDeposited() int64 {
	var total int64
	for _, dep := range d.Deposits {
		total += dep.Amount
	}
	return total
}

// IsOverdue reports whether the debt is pending past its due date
func (d *Debt) IsOverdue(now time.Time) bool {
	return d.Status == enum.DebtStatusPending && !d.DueDate.IsZero() && now.After(d.DueDate)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d Debt) MarshalJSON() ([]byte, error) {
	type Alias Debt
	return json.Marshal(&struct {
		Alias
		Amount          float64 `json:"amount"`
		RemainingAmount float64 `json:"remaining_amount"`
	}{
		Alias:           Alias(d),
		Amount:          float64(d.Amount) / 100,
		RemainingAmount: float64(d.RemainingAmount) / 100,
	})
}

// DebtFromSale builds the debt record for a debt-type sale. The receivable
// amount is the sale total; an initial deposit, when present, is seeded as
// the debt's first deposit and already subtracted from the remaining amount.
func DebtFromSale(sale *Sale, dueDate time.Time, description string) *Debt {
	debt := &Debt{
		CustomerName:    sale.CustomerName,
		PhoneNumber:     sale.PhoneNumber,
		Amount:          sale.TotalAmount,
		RemainingAmount: sale.TotalAmount,
		Date:            sale.SaleDate,
		DueDate:         dueDate,
		Description:     description,
		Status:          enum.DebtStatusPending,
		SaleID:          &sale.ID,
	}

	if sale.InitialDeposit > 0 {
		debt.RemainingAmount = sale.TotalAmount - sale.InitialDeposit
		debt.Deposits = []DebtDeposit{{
			Amount: sale.InitialDeposit,
			Date:   sale.SaleDate,
		}}
		if debt.RemainingAmount <= 0 {
			debt.Status = enum.DebtStatusPaid
		}
	}

	return debt
}

// DebtDeposit represents a partial payment applied against a debt's
// remaining balance. Deposits are append-only.
type DebtDeposit struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DebtID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"debt_id"`
	Amount    int64          `gorm:"not null" json:"-"` // Stored in cents
	Date      time.Time      `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Debt Debt `gorm:"foreignKey:DebtID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new deposit
func (dd *DebtDeposit) BeforeCreate(tx *gorm.DB) error {
	if dd.ID == uuid.Nil {
		dd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DebtDeposit model
func (DebtDeposit) TableName() string {
	return "debt_deposits"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (dd DebtDeposit) MarshalJSON() ([]byte, error) {
	type Alias DebtDeposit
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(dd),
		Amount: float64(dd.Amount) / 100,
	})
}
