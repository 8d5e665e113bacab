package service

import (
	"context"
	"log"

	"pdv-client/internal/checkout"
	"pdv-client/internal/config"
	"pdv-client/pkg/money"
	"pdv-client/pkg/printer"
	"pdv-client/pkg/receipt"
)

// PrinterService turns a finalized checkout snapshot into paper. It owns
// the strategy cascade: the spool path first, raw ESC/POS to a thermal
// device as fallback. Printing is best effort and never fails a sale.
type PrinterService struct {
	dispatcher Dispatcher
	locale     money.Locale
	header     receipt.Header
	paperWidth int
}

// Dispatcher is the subset of printer.Dispatcher the service needs,
// extracted so tests can substitute fakes.
type Dispatcher interface {
	Dispatch(ctx context.Context, job printer.Job) bool
}

// NewPrinterService builds the cascade from configuration. When no thermal
// device is configured only the spool strategy participates; the direct
// strategy would otherwise report success against a null device.
func NewPrinterService(cfg *config.Config) *PrinterService {
	strategies := []printer.Strategy{
		printer.NewSpoolStrategy(cfg.Printer.SpoolCommand),
	}

	if cfg.Printer.Type != "" && cfg.Printer.Type != "none" {
		dev, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
		if err != nil {
			log.Printf("printer: direct strategy disabled: %v", err)
		} else {
			strategies = append(strategies, printer.NewDirectStrategy(dev))
		}
	}

	return &PrinterService{
		dispatcher: printer.NewDispatcher(strategies...),
		locale:     cfg.Currency.Locale(),
		header: receipt.Header{
			StoreName: cfg.Store.Name,
			Tagline:   cfg.Store.Tagline,
			DocTitle:  "CUPOM FISCAL",
		},
		paperWidth: cfg.Printer.PaperWidth,
	}
}

// Status reports the host's print facilities, probed fresh on every call.
func (s *PrinterService) Status() printer.Capability {
	return printer.Probe()
}

// BuildReceipt converts a checkout snapshot into the immutable receipt
// artifact. Everything the renderers need is copied out here; later cart
// mutations cannot reach it.
func (s *PrinterService) BuildReceipt(snap *checkout.Snapshot, operator string) receipt.Receipt {
	lines := make([]receipt.Line, len(snap.Lines))
	for i, li := range snap.Lines {
		lines[i] = receipt.Line{
			Name:      li.Name,
			Barcode:   li.Barcode,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}

	return receipt.Receipt{
		Header:             s.header,
		Operator:           operator,
		Lines:              lines,
		Subtotal:           snap.Totals.Subtotal,
		DiscountPercentage: snap.Totals.DiscountPercentage,
		DiscountAmount:     snap.Totals.DiscountAmount,
		Total:              snap.Totals.Total,
		PaymentLabel:       snap.Payment.Method.Label(),
		Cash:               snap.Payment.Method.IsCash(),
		AmountReceived:     snap.Payment.AmountTendered,
		Change:             snap.Totals.Change,
	}
}

// PrintReceipt renders both renditions and runs the cascade. The result is
// a plain bool: a sale is already confirmed by the time this runs, and a
// printing problem must not look like a checkout failure.
func (s *PrinterService) PrintReceipt(ctx context.Context, snap *checkout.Snapshot, operator string) bool {
	r := s.BuildReceipt(snap, operator)

	html, err := receipt.Render(r, s.locale, receipt.Options{AutoPrint: true, AutoClose: true})
	if err != nil {
		log.Printf("printer: receipt render failed: %v", err)
		return false
	}

	return s.dispatcher.Dispatch(ctx, printer.Job{
		HTML:   html,
		ESCPOS: s.formatESCPOS(r),
	})
}

// PreviewDocument renders the on-screen rendition without auto-print.
func (s *PrinterService) PreviewDocument(snap *checkout.Snapshot, operator string) (string, error) {
	r := s.BuildReceipt(snap, operator)
	return receipt.Render(r, s.locale, receipt.Options{})
}

// TestPrint pushes a short diagnostic page through the cascade.
func (s *PrinterService) TestPrint(ctx context.Context) bool {
	doc := printer.NewDocument(s.paperWidth)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.header.StoreName).
		SetBold(false).
		Text("Teste de impressao").
		Separator('-').
		SetAlign(printer.AlignLeft).
		KeyValue("Status", "OK").
		FeedLines(3).
		Cut()

	html, err := receipt.Render(receipt.Receipt{
		Header:       s.header,
		Operator:     "Sistema",
		PaymentLabel: "Teste",
	}, s.locale, receipt.Options{AutoPrint: true})
	if err != nil {
		log.Printf("printer: test render failed: %v", err)
		return false
	}

	return s.dispatcher.Dispatch(ctx, printer.Job{HTML: html, ESCPOS: doc.Bytes()})
}

// formatESCPOS lays the receipt out for a thermal printer at the
// configured paper width.
func (s *PrinterService) formatESCPOS(r receipt.Receipt) []byte {
	doc := printer.NewDocument(s.paperWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if r.Header.Tagline != "" {
		doc.Text(r.Header.Tagline)
	}
	doc.Text(r.Header.DocTitle).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Vendedor", r.Operator).
		Separator('-')

	for _, l := range r.Lines {
		doc.ItemLine(l.Quantity, l.Name, s.locale.Format(l.Total()))
		if l.Barcode != "" {
			doc.TextF("  Cod: %s", l.Barcode)
		}
	}

	doc.Separator('-').
		KeyValue("Subtotal", s.locale.Format(r.Subtotal))
	if r.DiscountAmount > 0 {
		doc.KeyValue("Desconto", "-"+s.locale.Format(r.DiscountAmount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", s.locale.Format(r.Total)).
		SetBold(false).
		Separator('-')

	doc.KeyValue("Pagamento", r.PaymentLabel)
	if r.Cash {
		doc.KeyValue("Recebido", s.locale.Format(r.AmountReceived)).
			KeyValue("Troco", s.locale.Format(r.Change))
	}

	doc.Separator('=').
		SetAlign(printer.AlignCenter).
		Text("Obrigado pela preferencia!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
