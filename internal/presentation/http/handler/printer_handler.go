package handler

import (
	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/presentation/http/dto/response"
)

// PrinterHandler handles the printer settings panel.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus probes the host's print facilities. The probe runs fresh on
// every call so plugging a printer in shows up without a restart.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.Status())
}

// TestPrint pushes a diagnostic page through the cascade.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	ok := h.printerService.TestPrint(c.Request.Context())
	response.OK(c, "Test print dispatched", gin.H{"printed": ok})
}
