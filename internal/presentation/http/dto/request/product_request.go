package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Code          string  `json:"code" binding:"omitempty,max=100"`
	Category      string  `json:"category" binding:"omitempty,max=255"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	BuyingPrice   float64 `json:"buying_price" binding:"required,gt=0"`
	SellingPrice  float64 `json:"selling_price" binding:"required,gt=0"`
	Notes         *string `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string  `json:"category" binding:"omitempty,max=255"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,min=0"`
	BuyingPrice   *float64 `json:"buying_price" binding:"omitempty,gt=0"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,gt=0"`
	Notes         *string  `json:"notes"`
}

// RestockRequest represents a restock request
type RestockRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Date     string `json:"date" binding:"omitempty"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
