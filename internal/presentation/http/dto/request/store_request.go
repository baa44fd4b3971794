package request

// CreateStoreRequest represents a store creation request
type CreateStoreRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateStoreRequest represents a store update request
type UpdateStoreRequest struct {
	Name    string  `json:"name" binding:"omitempty,min=1,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
}
