package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/request"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
	"github.com/kasirku/kasir-api/internal/presentation/http/middleware"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// ReceiptHandler handles checkout and receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	printerService *service.PrinterService
	storeService   *service.StoreService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(
	receiptService *service.ReceiptService,
	printerService *service.PrinterService,
	storeService *service.StoreService,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		printerService: printerService,
		storeService:   storeService,
	}
}

// CreateSale handles checkout. Send an Idempotency-Key header so a
// retried request cannot ring up the sale twice.
// @Summary Create sale
// @Tags receipts
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) CreateSale(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		items[i] = service.SaleItemInput{ProductID: productID, Quantity: item.Quantity}
	}

	receipt, err := h.receiptService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", receipt)
}

// GetReceipt handles getting a receipt with its items
// @Summary Get receipt
// @Tags receipts
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	ownerID := middleware.GetStoreOwnerID(c)
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), ownerID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// ListReceipts handles the receipt listing
// @Summary List receipts
// @Tags receipts
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	var req request.ListReceiptsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	ownerID := middleware.GetStoreOwnerID(c)
	result, err := h.receiptService.ListReceipts(c.Request.Context(), ownerID, &service.ListReceiptsInput{
		Pagination: params,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// PrintReceipt renders the receipt and sends it to the thermal printer
// @Summary Print receipt
// @Tags receipts
// @Security BearerAuth
// @Param X-Store-ID header string true "Store ID"
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id}/print [post]
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	ownerID := middleware.GetStoreOwnerID(c)
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), ownerID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), ownerID, middleware.GetStoreID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), store, receipt); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
