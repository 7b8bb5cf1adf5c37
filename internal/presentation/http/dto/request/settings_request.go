package request

// UpdateSettingsRequest represents a company settings update request
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"company_name" binding:"omitempty,max=255"`
	CompanyDetails *string `json:"company_details"`
	CompanyImage   *string `json:"company_image" binding:"omitempty,max=255"`
	Currency       *string `json:"currency" binding:"omitempty,max=10"`
	Timezone       *string `json:"timezone" binding:"omitempty,max=50"`
	LowStockAlerts *bool   `json:"low_stock_alerts"`
}
