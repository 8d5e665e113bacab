package entity

import (
	"time"

	"pdv-client/internal/domain/enum"
)

// Sale mirrors the backend sale payload returned by POST /sales/ and the
// sales listing.
type Sale struct {
	ID             uint               `json:"id"`
	Total          float64            `json:"total"`
	Discount       float64            `json:"discount"`
	FinalTotal     float64            `json:"final_total"`
	PaymentType    enum.PaymentMethod `json:"payment_type"`
	AmountReceived *float64           `json:"amount_received,omitempty"`
	Change         *float64           `json:"change,omitempty"`
	Status         string             `json:"status"`
	UserID         uint               `json:"user_id"`
	User           *User              `json:"user,omitempty"`
	SaleItems      []SaleItem         `json:"sale_items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleItem mirrors one line of a persisted sale.
type SaleItem struct {
	ID        uint     `json:"id"`
	SaleID    uint     `json:"sale_id"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Total     float64  `json:"total"`
	Product   *Product `json:"product,omitempty"`
}

// SaleRequest is the payload for POST /sales/.
type SaleRequest struct {
	Items              []SaleItemRequest  `json:"items"`
	PaymentMethod      enum.PaymentMethod `json:"payment_method"`
	DiscountPercentage float64            `json:"discount_percentage"`
	AmountReceived     float64            `json:"amount_received"`
}

// SaleItemRequest is one line of the sale payload.
type SaleItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleFilter narrows the sales listing.
type SaleFilter struct {
	UserID      string
	Status      string
	PaymentType string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Page        int
	Limit       int
}
