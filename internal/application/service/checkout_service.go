package service

import (
	"context"
	"math"
	"strings"

	"pdv-client/internal/checkout"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/domain/enum"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/money"
)

// CheckoutService drives the PDV screen: barcode lookups feeding the cart,
// live totals, the payment dialog inputs and sale finalization. All cart
// mutations run under the session lock, so scans are processed one at a
// time per operator.
type CheckoutService struct {
	locale  money.Locale
	printer *PrinterService
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(locale money.Locale, printer *PrinterService) *CheckoutService {
	return &CheckoutService{locale: locale, printer: printer}
}

// CartView is the PDV screen's rendering of the live cart.
type CartView struct {
	State    string              `json:"state"`
	Items    []checkout.LineItem `json:"items"`
	Totals   checkout.Totals     `json:"totals"`
	Display  TotalsDisplay       `json:"display"`
	Tender   FieldView           `json:"tender"`
	Discount int                 `json:"discount"`
}

// TotalsDisplay carries the locale-formatted totals for direct rendering.
type TotalsDisplay struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	Total          string `json:"total"`
	Change         string `json:"change"`
}

// FieldView is the state of the tendered-amount input after an edit event.
type FieldView struct {
	Text    string  `json:"text"`
	Value   float64 `json:"value"`
	Focused bool    `json:"focused"`
}

// Scan resolves a barcode against the backend and adds the product to the
// cart. Stock bounds are enforced before anything is mutated; the backend
// is the source of the stock ceiling at lookup time.
func (s *CheckoutService) Scan(ctx context.Context, sess *session.Session, barcode string) (*CartView, error) {
	code := strings.TrimSpace(barcode)
	if code == "" {
		return nil, apperror.NewBadRequestError("Barcode is required")
	}

	product, err := sess.API.ProductByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.AddItem(product); err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// SetQuantity replaces a line's quantity; zero removes the line. Amounts
// above the known stock are rejected, never clamped.
func (s *CheckoutService) SetQuantity(sess *session.Session, productID uint, quantity int) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// RemoveItem drops a line from the cart.
func (s *CheckoutService) RemoveItem(sess *session.Session, productID uint) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.RemoveItem(productID); err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// Clear abandons the cart and resets the payment inputs.
func (s *CheckoutService) Clear(sess *session.Session) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.Clear(); err != nil {
		return nil, err
	}
	sess.Tender.SetValue(0)
	sess.Discount.SetValue(0)
	return s.cartView(sess), nil
}

// View returns the current cart and totals without mutating anything.
func (s *CheckoutService) View(sess *session.Session) *CartView {
	sess.Lock()
	defer sess.Unlock()
	return s.cartView(sess)
}

// OpenPayment opens the payment dialog.
func (s *CheckoutService) OpenPayment(sess *session.Session) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.OpenPayment(); err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// CancelPayment closes the dialog, keeping the cart.
func (s *CheckoutService) CancelPayment(sess *session.Session) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Checkout.CancelPayment(); err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// EditTender feeds one edit event of the tendered-amount field: "focus",
// "blur", or "input" with the field text after the keystroke. The parsed
// value is committed on every keystroke so change and totals stay live
// while the operator types.
func (s *CheckoutService) EditTender(sess *session.Session, event, text string) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	switch event {
	case "focus":
		sess.Tender.Focus()
	case "blur":
		sess.Tender.Blur()
	case "input":
		sess.Tender.Input(text)
	default:
		return nil, apperror.NewBadRequestError("Unknown edit event")
	}
	return s.cartView(sess), nil
}

// EditDiscount feeds one edit event of the discount-percentage field,
// clamped to [0,100].
func (s *CheckoutService) EditDiscount(sess *session.Session, event, text string) (*CartView, error) {
	sess.Lock()
	defer sess.Unlock()

	switch event {
	case "focus":
		sess.Discount.Focus()
	case "blur":
		sess.Discount.Blur()
	case "input":
		sess.Discount.Input(text)
	default:
		return nil, apperror.NewBadRequestError("Unknown edit event")
	}
	return s.cartView(sess), nil
}

// FinalizeInput is the checkout submission. Explicit amounts, when given,
// override the dialog fields (API callers without the dialog).
type FinalizeInput struct {
	PaymentMethod      enum.PaymentMethod
	DiscountPercentage *float64
	AmountReceived     *float64
}

// FinalizeResult reports the confirmed sale and whether the receipt made
// it to paper. Printing failure never undoes a confirmed sale.
type FinalizeResult struct {
	Sale    *entity.Sale `json:"sale"`
	Printed bool         `json:"printed"`
	Cart    *CartView    `json:"cart"`
}

// Finalize freezes the snapshot, posts the sale, and only clears the cart
// once the backend confirms. A failed submission drops back to Building
// with the cart intact for retry.
func (s *CheckoutService) Finalize(ctx context.Context, sess *session.Session, input FinalizeInput) (*FinalizeResult, error) {
	if input.DiscountPercentage != nil && *input.DiscountPercentage != math.Trunc(*input.DiscountPercentage) {
		return nil, apperror.NewBadRequestError("Discount percentage must be a whole number")
	}

	sess.Lock()

	if input.AmountReceived != nil {
		sess.Tender.SetValue(money.FromFloat(*input.AmountReceived))
	}
	if input.DiscountPercentage != nil {
		sess.Discount.SetValue(int(*input.DiscountPercentage))
	}

	intent := checkout.PaymentIntent{
		Method:         input.PaymentMethod,
		AmountTendered: sess.Tender.Value(),
	}

	snapshot, err := sess.Checkout.BeginSubmit(float64(sess.Discount.Value()), intent)
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	sess.Unlock()

	// The request itself runs outside the lock; the session is in
	// Submitting state, so concurrent mutations are rejected meanwhile.
	req := snapshot.SaleRequest()
	sale, err := sess.API.CreateSale(ctx, &req)

	sess.Lock()
	defer sess.Unlock()

	if err != nil {
		sess.Checkout.Fail()
		return nil, err
	}

	sess.Checkout.Complete()
	sess.Tender.SetValue(0)
	sess.Discount.SetValue(0)

	printed := s.printer.PrintReceipt(ctx, snapshot, sess.User.Name)

	return &FinalizeResult{
		Sale:    sale,
		Printed: printed,
		Cart:    s.cartView(sess),
	}, nil
}

// PreviewReceipt renders the would-be receipt for the current cart for
// visual inspection, without finalizing anything.
func (s *CheckoutService) PreviewReceipt(sess *session.Session, method enum.PaymentMethod) (string, error) {
	sess.Lock()
	defer sess.Unlock()

	cart := sess.Checkout.Cart()
	if cart.Empty() {
		return "", apperror.ErrEmptyCart
	}
	if !method.Valid() {
		method = enum.PaymentCash
	}

	snapshot := &checkout.Snapshot{
		Lines:  cart.Lines(),
		Totals: cart.Totals(float64(sess.Discount.Value()), sess.Tender.Value(), method),
		Payment: checkout.PaymentIntent{
			Method:         method,
			AmountTendered: sess.Tender.Value(),
		},
	}
	return s.printer.PreviewDocument(snapshot, sess.User.Name)
}

// cartView assembles the screen model; callers hold the session lock.
func (s *CheckoutService) cartView(sess *session.Session) *CartView {
	cart := sess.Checkout.Cart()
	totals := cart.Totals(float64(sess.Discount.Value()), sess.Tender.Value(), enum.PaymentCash)

	return &CartView{
		State:  sess.Checkout.State().String(),
		Items:  cart.Lines(),
		Totals: totals,
		Display: TotalsDisplay{
			Subtotal:       s.locale.Format(totals.Subtotal),
			DiscountAmount: s.locale.Format(totals.DiscountAmount),
			Total:          s.locale.Format(totals.Total),
			Change:         s.locale.Format(totals.Change),
		},
		Tender: FieldView{
			Text:    sess.Tender.Display(),
			Value:   sess.Tender.Value().Float64(),
			Focused: sess.Tender.Focused(),
		},
		Discount: sess.Discount.Value(),
	}
}
