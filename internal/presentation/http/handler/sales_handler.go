package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/presentation/http/dto/response"
)

// SalesHandler handles the sales history screens.
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List returns sales matching the query filters.
func (h *SalesHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := entity.SaleFilter{
		UserID:      c.Query("user_id"),
		Status:      c.Query("status"),
		PaymentType: c.Query("payment_type"),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		Page:        page,
		Limit:       limit,
	}

	sess := GetSession(c)
	sales, err := h.salesService.ListSales(c.Request.Context(), sess, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// Get returns one sale with its items.
func (h *SalesHandler) Get(c *gin.Context) {
	sess := GetSession(c)
	sale, err := h.salesService.GetSale(c.Request.Context(), sess, ParseID(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Reprint pushes a second copy of a past receipt through the print cascade.
func (h *SalesHandler) Reprint(c *gin.Context) {
	sess := GetSession(c)
	printed, err := h.salesService.Reprint(c.Request.Context(), sess, ParseID(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reprint dispatched", gin.H{"printed": printed})
}

// ReprintPreview renders a past sale's receipt as HTML.
func (h *SalesHandler) ReprintPreview(c *gin.Context) {
	sess := GetSession(c)
	html, err := h.salesService.ReprintPreview(c.Request.Context(), sess, ParseID(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
