package checkout

import (
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/domain/enum"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/money"
)

// LineItem is one cart line. Invariant: 1 <= Quantity <= StockCeiling.
// Lines are owned exclusively by the Cart.
type LineItem struct {
	ProductID    uint        `json:"product_id"`
	Name         string      `json:"name"`
	Barcode      string      `json:"barcode"`
	UnitPrice    money.Money `json:"unit_price"`
	Quantity     int         `json:"quantity"`
	StockCeiling int         `json:"stock_ceiling"`
}

// Total returns unit price times quantity.
func (li LineItem) Total() money.Money {
	return li.UnitPrice.Mul(li.Quantity)
}

// Totals are derived values, recomputed on every cart mutation and never
// stored independently.
type Totals struct {
	Subtotal           money.Money `json:"subtotal"`
	DiscountPercentage float64     `json:"discount_percentage"`
	DiscountAmount     money.Money `json:"discount_amount"`
	Total              money.Money `json:"total"`
	Change             money.Money `json:"change"`
}

// Cart is the authoritative in-memory collection of sale lines, ordered by
// insertion and unique per product ID. Repeat additions merge into the
// existing line instead of duplicating it.
type Cart struct {
	lines []LineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the product. An existing line is incremented
// unless that would exceed the stock known to the client; a new line is
// rejected outright when the product has no stock. Rejections leave the
// cart unchanged.
func (c *Cart) AddItem(p *entity.Product) error {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			if c.lines[i].Quantity+1 > c.lines[i].StockCeiling {
				return apperror.NewStockConflict(p.Name, c.lines[i].StockCeiling)
			}
			c.lines[i].Quantity++
			return nil
		}
	}

	if p.Stock <= 0 {
		return apperror.NewOutOfStock(p.Name)
	}

	c.lines = append(c.lines, LineItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Barcode:      p.Barcode,
		UnitPrice:    p.PriceMoney(),
		Quantity:     1,
		StockCeiling: p.Stock,
	})
	return nil
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line. A quantity above the stock ceiling is rejected, not clamped: the
// caller must be told.
func (c *Cart) SetQuantity(productID uint, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if quantity > c.lines[i].StockCeiling {
				return apperror.NewStockConflict(c.lines[i].Name, c.lines[i].StockCeiling)
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return apperror.NewBadRequestError("Product is not in the cart")
}

// RemoveItem deletes the line if present. Absent is a no-op, not an error.
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() money.Money {
	var sum money.Money
	for _, li := range c.lines {
		sum += li.Total()
	}
	return sum
}

// Totals computes the derived totals for the current lines without
// mutating the cart. The discount percentage applies to the subtotal,
// rounded half-up to the minor unit; the total floors at zero. Change is
// only meaningful for cash payments.
func (c *Cart) Totals(discountPct float64, tendered money.Money, method enum.PaymentMethod) Totals {
	subtotal := c.Subtotal()
	discount := subtotal.Percent(discountPct)

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	var change money.Money
	if method.IsCash() && tendered > total {
		change = tendered - total
	}

	return Totals{
		Subtotal:           subtotal,
		DiscountPercentage: discountPct,
		DiscountAmount:     discount,
		Total:              total,
		Change:             change,
	}
}
