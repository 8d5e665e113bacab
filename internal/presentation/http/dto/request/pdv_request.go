package request

import "pdv-client/internal/domain/enum"

// ScanRequest adds a product to the cart by barcode.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// QuantityRequest replaces a cart line's quantity.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// FieldEditRequest is one edit event of a payment-dialog input. Event is
// "focus", "input" or "blur"; Text carries the field content for input
// events.
type FieldEditRequest struct {
	Event string `json:"event" binding:"required,oneof=focus input blur"`
	Text  string `json:"text"`
}

// FinalizeRequest submits the sale. The discount and received amounts are
// optional overrides of the dialog fields.
type FinalizeRequest struct {
	PaymentMethod      enum.PaymentMethod `json:"payment_method" binding:"required"`
	DiscountPercentage *float64           `json:"discount_percentage"`
	AmountReceived     *float64           `json:"amount_received"`
}

// PreviewRequest renders the receipt for the current cart.
type PreviewRequest struct {
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
}

// StockRequest sets a product's stock to an absolute level.
type StockRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}
