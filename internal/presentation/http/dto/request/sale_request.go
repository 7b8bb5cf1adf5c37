package request

import "github.com/google/uuid"

// SaleItemRequest represents one cart line in a checkout
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// RecordSaleRequest represents a checkout request
type RecordSaleRequest struct {
	CustomerName   string            `json:"customer_name" binding:"required,max=255"`
	PhoneNumber    string            `json:"phone_number" binding:"omitempty,max=50"`
	Address        string            `json:"address" binding:"omitempty,max=255"`
	PaymentType    string            `json:"payment_type" binding:"required,oneof=paid debt"`
	SaleDate       string            `json:"sale_date" binding:"omitempty"`
	Discount       float64           `json:"discount" binding:"min=0"`
	InitialDeposit float64           `json:"initial_deposit" binding:"min=0"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search      string `form:"search"`
	PaymentType string `form:"payment_type"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
