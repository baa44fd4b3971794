package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/request"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct handles product creation
// @Summary Create product
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Barcode:   req.Barcode,
		Stock:     req.Stock,
		CostPrice: req.CostPrice,
		SellPrice: req.SellPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// GetProduct handles getting a single product
// @Summary Get product
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// ListProducts handles product listing with filters
// @Summary List products
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req request.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	result, err := h.productService.ListProducts(c.Request.Context(), &service.ListProductsInput{
		Pagination: params,
		Search:     req.Search,
		Category:   req.Category,
		LowStock:   req.LowStock,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// GetLowStock handles the low-stock listing
// @Summary List low-stock products
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Success 200 {object} response.APIResponse
// @Router /products/low-stock [get]
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	result, err := h.productService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", result)
}

// UpdateProduct handles product updates
// @Summary Update product
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param id path string true "Product ID"
// @Param request body request.UpdateProductRequest true "Product data"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Barcode:   req.Barcode,
		Stock:     req.Stock,
		CostPrice: req.CostPrice,
		SellPrice: req.SellPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct handles product deletion
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
