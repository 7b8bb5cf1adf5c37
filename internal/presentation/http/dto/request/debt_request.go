package request

// CreateDebtRequest represents a manual debt book entry request
type CreateDebtRequest struct {
	CustomerName string  `json:"customer_name" binding:"required,max=255"`
	PhoneNumber  string  `json:"phone_number" binding:"required,max=50"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Date         string  `json:"date" binding:"omitempty"`
	DueDate      string  `json:"due_date" binding:"omitempty"`
	Description  string  `json:"description" binding:"omitempty"`
}

// AddDepositRequest represents a deposit against a debt
type AddDepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"omitempty"`
}

// DebtFilterRequest represents debt filter parameters
type DebtFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
