package request

// AddTransactionRequest represents a manual ledger entry request
type AddTransactionRequest struct {
	Type          string  `json:"type" binding:"required,oneof=income expense"`
	Category      string  `json:"category" binding:"required,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date" binding:"omitempty"`
	Description   string  `json:"description" binding:"omitempty"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,max=50"`
}

// SetOpeningBalanceRequest represents the opening balance request
type SetOpeningBalanceRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"omitempty"`
	Description string  `json:"description" binding:"omitempty"`
}

// TransactionFilterRequest represents ledger filter parameters
type TransactionFilterRequest struct {
	Search    string `form:"search"`
	Type      string `form:"type"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
