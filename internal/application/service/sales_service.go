package service

import (
	"context"
	"fmt"

	"pdv-client/internal/checkout"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/money"
)

// SalesService is the sales history surface: listing, detail and reprint.
type SalesService struct {
	printer *PrinterService
}

// NewSalesService creates a new sales service.
func NewSalesService(printer *PrinterService) *SalesService {
	return &SalesService{printer: printer}
}

// ListSales returns sales matching the filter.
func (s *SalesService) ListSales(ctx context.Context, sess *session.Session, filter entity.SaleFilter) ([]entity.Sale, error) {
	return sess.API.ListSales(ctx, filter)
}

// GetSale returns one sale with its items.
func (s *SalesService) GetSale(ctx context.Context, sess *session.Session, id uint) (*entity.Sale, error) {
	return sess.API.GetSale(ctx, id)
}

// Reprint fetches a past sale and pushes a second copy of its receipt
// through the print cascade.
func (s *SalesService) Reprint(ctx context.Context, sess *session.Session, id uint) (bool, error) {
	sale, err := sess.API.GetSale(ctx, id)
	if err != nil {
		return false, err
	}

	snap, err := snapshotFromSale(sale)
	if err != nil {
		return false, err
	}
	return s.printer.PrintReceipt(ctx, snap, saleOperator(sale)), nil
}

// ReprintPreview renders a past sale's receipt for on-screen viewing.
func (s *SalesService) ReprintPreview(ctx context.Context, sess *session.Session, id uint) (string, error) {
	sale, err := sess.API.GetSale(ctx, id)
	if err != nil {
		return "", err
	}

	snap, err := snapshotFromSale(sale)
	if err != nil {
		return "", err
	}
	return s.printer.PreviewDocument(snap, saleOperator(sale))
}

func saleOperator(sale *entity.Sale) string {
	if sale.User != nil {
		return sale.User.Name
	}
	return ""
}

// snapshotFromSale rebuilds the finalization snapshot from the backend's
// record of a sale so the receipt renderers can run on history too.
func snapshotFromSale(sale *entity.Sale) (*checkout.Snapshot, error) {
	if len(sale.SaleItems) == 0 {
		return nil, apperror.NewBadRequestError("Sale has no items to print")
	}

	lines := make([]checkout.LineItem, len(sale.SaleItems))
	for i, item := range sale.SaleItems {
		name := fmt.Sprintf("Produto #%d", item.ProductID)
		barcode := ""
		if item.Product != nil {
			name = item.Product.Name
			barcode = item.Product.Barcode
		}
		lines[i] = checkout.LineItem{
			ProductID: item.ProductID,
			Name:      name,
			Barcode:   barcode,
			Quantity:  item.Quantity,
			UnitPrice: money.FromFloat(item.UnitPrice),
		}
	}

	subtotal := money.FromFloat(sale.Total)
	discount := money.FromFloat(sale.Discount)
	total := money.FromFloat(sale.FinalTotal)

	// The backend stores the discount as an amount; the percentage on the
	// reprinted receipt is recovered from it.
	var pct float64
	if subtotal > 0 && discount > 0 {
		pct = float64(discount) / float64(subtotal) * 100
	}

	var received, change money.Money
	if sale.AmountReceived != nil {
		received = money.FromFloat(*sale.AmountReceived)
	} else {
		received = total
	}
	if sale.Change != nil {
		change = money.FromFloat(*sale.Change)
	}

	return &checkout.Snapshot{
		Lines: lines,
		Totals: checkout.Totals{
			Subtotal:           subtotal,
			DiscountPercentage: pct,
			DiscountAmount:     discount,
			Total:              total,
			Change:             change,
		},
		Payment: checkout.PaymentIntent{
			Method:         sale.PaymentType,
			AmountTendered: received,
		},
		TakenAt: sale.CreatedAt,
	}, nil
}
