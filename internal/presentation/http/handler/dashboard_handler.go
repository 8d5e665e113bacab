package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/presentation/http/dto/response"
)

// DashboardHandler handles the home screen endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the counters and formatted revenue figures.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	sess := GetSession(c)
	view, err := h.dashboardService.Stats(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", view)
}

// GetLowStock returns the products under their minimum stock.
func (h *DashboardHandler) GetLowStock(c *gin.Context) {
	sess := GetSession(c)
	products, err := h.dashboardService.LowStock(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Low stock products retrieved successfully", products)
}

// GetTopProducts returns the best sellers for a period.
func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sess := GetSession(c)
	products, err := h.dashboardService.TopProducts(c.Request.Context(), sess, c.DefaultQuery("period", "month"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Top products retrieved successfully", products)
}
