package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/request"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
)

// StoreHandler handles store-related HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStore handles store creation
// @Summary Create store
// @Tags stores
// @Security BearerAuth
// @Param request body request.CreateStoreRequest true "Store data"
// @Success 201 {object} response.APIResponse
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &service.CreateStoreInput{
		OwnerID: *userID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

// ListStores lists the authenticated user's stores
// @Summary List stores
// @Tags stores
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// GetStore handles getting a single store
// @Summary Get store
// @Tags stores
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} response.APIResponse
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", store)
}

// UpdateStore handles store updates
// @Summary Update store
// @Tags stores
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body request.UpdateStoreRequest true "Store data"
// @Success 200 {object} response.APIResponse
// @Router /stores/{id} [put]
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req request.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), &service.UpdateStoreInput{
		OwnerID: *userID,
		StoreID: id,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", store)
}

// DeleteStore handles store deletion
// @Summary Delete store
// @Tags stores
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 204
// @Router /stores/{id} [delete]
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
