package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus reports whether the configured thermal printer is reachable
// @Summary Printer status
// @Tags printer
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", gin.H{
		"connected": h.printerService.IsConnected(),
	})
}
