package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Category  string  `json:"category" binding:"required,min=1,max=100"`
	Barcode   *string `json:"barcode" binding:"omitempty,max=100"`
	Stock     int     `json:"stock" binding:"gte=0"`
	CostPrice float64 `json:"cost_price" binding:"gte=0"`
	SellPrice float64 `json:"sell_price" binding:"gte=0"`
}

// UpdateProductRequest represents a product update request; only set
// fields are applied
type UpdateProductRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Category  *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Barcode   *string  `json:"barcode" binding:"omitempty,max=100"`
	Stock     *int     `json:"stock" binding:"omitempty,gte=0"`
	CostPrice *float64 `json:"cost_price" binding:"omitempty,gte=0"`
	SellPrice *float64 `json:"sell_price" binding:"omitempty,gte=0"`
}

// ListProductsRequest represents product listing query parameters
type ListProductsRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
