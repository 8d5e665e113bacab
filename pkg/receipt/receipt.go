// Package receipt renders a finalized sale as a self-contained printable
// HTML document: no external stylesheet or script, so it can be opened in
// an isolated viewing context and still render correctly.
package receipt

import (
	"pdv-client/pkg/money"
)

// Header is the store header printed at the top of a receipt.
type Header struct {
	StoreName string
	Tagline   string
	DocTitle  string
}

// Line is a single item line. The line total is always recomputed from
// unit price and quantity at render time, never trusted from upstream.
type Line struct {
	Name      string
	Barcode   string
	Quantity  int
	UnitPrice money.Money
}

// Total returns unit price times quantity.
func (l Line) Total() money.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Receipt is the immutable rendering artifact built once from a finalized
// cart snapshot. It is not mutated afterward even if the cart changes.
type Receipt struct {
	Header             Header
	Operator           string
	Lines              []Line
	Subtotal           money.Money
	DiscountPercentage float64
	DiscountAmount     money.Money
	Total              money.Money
	PaymentLabel       string
	Cash               bool
	AmountReceived     money.Money
	Change             money.Money
}

// Options control the embedded print directive.
type Options struct {
	AutoPrint bool // trigger printing once the document is loaded
	AutoClose bool // close the viewing surface shortly after printing
}
