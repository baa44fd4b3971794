package request

// SaleItemRequest represents one line of a checkout request
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest represents a checkout request
type CreateSaleRequest struct {
	Discount      float64           `json:"discount" binding:"gte=0"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card qris transfer"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListReceiptsRequest represents receipt listing query parameters
type ListReceiptsRequest struct {
	Page    int     `form:"page"`
	PerPage int     `form:"per_page"`
	From    *string `form:"from"`
	To      *string `form:"to"`
}
