package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/presentation/http/dto/request"
	"pdv-client/internal/presentation/http/dto/response"
	"pdv-client/internal/presentation/http/middleware"
)

// PDVHandler handles the checkout screen: scans, cart edits, the payment
// dialog inputs and sale finalization.
type PDVHandler struct {
	checkoutService *service.CheckoutService
}

// NewPDVHandler creates a new PDV handler
func NewPDVHandler(checkoutService *service.CheckoutService) *PDVHandler {
	return &PDVHandler{checkoutService: checkoutService}
}

// GetCart returns the live cart and totals.
func (h *PDVHandler) GetCart(c *gin.Context) {
	sess := GetSession(c)
	response.OK(c, "Cart retrieved successfully", h.checkoutService.View(sess))
}

// Scan resolves a barcode and adds the product to the cart.
func (h *PDVHandler) Scan(c *gin.Context) {
	var req request.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	cart, err := h.checkoutService.Scan(c.Request.Context(), sess, req.Barcode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", cart)
}

// SetQuantity replaces a line's quantity.
func (h *PDVHandler) SetQuantity(c *gin.Context) {
	var req request.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	cart, err := h.checkoutService.SetQuantity(sess, ParseID(c, "product_id"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", cart)
}

// RemoveItem drops a line from the cart.
func (h *PDVHandler) RemoveItem(c *gin.Context) {
	sess := GetSession(c)
	cart, err := h.checkoutService.RemoveItem(sess, ParseID(c, "product_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", cart)
}

// ClearCart abandons the current sale.
func (h *PDVHandler) ClearCart(c *gin.Context) {
	sess := GetSession(c)
	cart, err := h.checkoutService.Clear(sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", cart)
}

// OpenPayment opens the payment dialog.
func (h *PDVHandler) OpenPayment(c *gin.Context) {
	sess := GetSession(c)
	cart, err := h.checkoutService.OpenPayment(sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment opened", cart)
}

// CancelPayment closes the dialog, keeping the cart.
func (h *PDVHandler) CancelPayment(c *gin.Context) {
	sess := GetSession(c)
	cart, err := h.checkoutService.CancelPayment(sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment cancelled", cart)
}

// EditTender feeds one edit event of the tendered-amount field.
func (h *PDVHandler) EditTender(c *gin.Context) {
	var req request.FieldEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	cart, err := h.checkoutService.EditTender(sess, req.Event, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Field updated", cart)
}

// EditDiscount feeds one edit event of the discount-percentage field.
func (h *PDVHandler) EditDiscount(c *gin.Context) {
	var req request.FieldEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	cart, err := h.checkoutService.EditDiscount(sess, req.Event, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Field updated", cart)
}

// Finalize submits the sale. The cart survives a failed submission.
func (h *PDVHandler) Finalize(c *gin.Context) {
	var req request.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	result, err := h.checkoutService.Finalize(c.Request.Context(), sess, service.FinalizeInput{
		PaymentMethod:      req.PaymentMethod,
		DiscountPercentage: req.DiscountPercentage,
		AmountReceived:     req.AmountReceived,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SalesCompleted.WithLabelValues(string(req.PaymentMethod)).Inc()
	if result.Printed {
		middleware.ReceiptsPrinted.WithLabelValues("ok").Inc()
	} else {
		middleware.ReceiptsPrinted.WithLabelValues("failed").Inc()
	}

	response.Created(c, "Sale completed", result)
}

// PreviewReceipt renders the would-be receipt for the current cart as HTML.
func (h *PDVHandler) PreviewReceipt(c *gin.Context) {
	var req request.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	html, err := h.checkoutService.PreviewReceipt(sess, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
