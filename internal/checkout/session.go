package checkout

import (
	"time"

	"pdv-client/internal/domain/entity"
	"pdv-client/internal/domain/enum"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/money"
)

// State is the explicit checkout state. Transitions are guarded; no
// transition skips validation.
type State int

const (
	StateIdle            State = iota // empty cart
	StateBuilding                     // cart has at least one line
	StateAwaitingPayment              // payment dialog open
	StateSubmitting                   // sale request in flight
	StateCompleted                    // backend confirmed, cart cleared
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateAwaitingPayment:
		return "awaiting_payment"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// PaymentIntent carries the chosen method and, for cash, the tendered
// amount.
type PaymentIntent struct {
	Method         enum.PaymentMethod `json:"method"`
	AmountTendered money.Money        `json:"amount_tendered"`
}

// Snapshot is the immutable finalization artifact: the lines, totals and
// payment intent frozen at submission time. It feeds both the backend sale
// request and the receipt, and stays valid even if the cart changes later.
type Snapshot struct {
	Lines   []LineItem
	Totals  Totals
	Payment PaymentIntent
	TakenAt time.Time
}

// SaleRequest converts the snapshot into the POST /sales/ payload. For
// non-cash methods the backend expects the total as the received amount.
func (s *Snapshot) SaleRequest() entity.SaleRequest {
	items := make([]entity.SaleItemRequest, len(s.Lines))
	for i, li := range s.Lines {
		items[i] = entity.SaleItemRequest{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice.Float64(),
		}
	}

	received := s.Totals.Total
	if s.Payment.Method.IsCash() {
		received = s.Payment.AmountTendered
	}

	return entity.SaleRequest{
		Items:              items,
		PaymentMethod:      s.Payment.Method,
		DiscountPercentage: s.Totals.DiscountPercentage,
		AmountReceived:     received.Float64(),
	}
}

// Session drives one operator's checkout flow:
//
//	Idle -> Building -> AwaitingPayment -> Submitting -> Completed
//	                 <- cancel          <- failure (cart retained)
//
// The cart is owned exclusively by the session, never persisted, and
// discarded with it.
type Session struct {
	cart    *Cart
	state   State
	pending *Snapshot
}

// NewSession creates an idle session with an empty cart.
func NewSession() *Session {
	return &Session{cart: NewCart(), state: StateIdle}
}

// State returns the current checkout state.
func (s *Session) State() State { return s.state }

// Cart exposes the live cart for reads. Mutations go through the session
// so the state stays consistent.
func (s *Session) Cart() *Cart { return s.cart }

// AddItem adds a scanned product. Starting a new sale from Idle or
// Completed moves to Building; a sale mid-payment rejects further scans.
func (s *Session) AddItem(p *entity.Product) error {
	if s.state == StateAwaitingPayment || s.state == StateSubmitting {
		return apperror.NewBadRequestError("Checkout in progress")
	}
	if err := s.cart.AddItem(p); err != nil {
		return err
	}
	s.state = StateBuilding
	return nil
}

// SetQuantity adjusts a line while building.
func (s *Session) SetQuantity(productID uint, quantity int) error {
	if s.state == StateAwaitingPayment || s.state == StateSubmitting {
		return apperror.NewBadRequestError("Checkout in progress")
	}
	if err := s.cart.SetQuantity(productID, quantity); err != nil {
		return err
	}
	s.syncBuildState()
	return nil
}

// RemoveItem removes a line while building.
func (s *Session) RemoveItem(productID uint) error {
	if s.state == StateAwaitingPayment || s.state == StateSubmitting {
		return apperror.NewBadRequestError("Checkout in progress")
	}
	s.cart.RemoveItem(productID)
	s.syncBuildState()
	return nil
}

// Clear abandons the current cart and returns to Idle.
func (s *Session) Clear() error {
	if s.state == StateSubmitting {
		return apperror.NewBadRequestError("Checkout in progress")
	}
	s.cart.Clear()
	s.pending = nil
	s.state = StateIdle
	return nil
}

// OpenPayment opens the payment dialog. Requires at least one line.
func (s *Session) OpenPayment() error {
	if s.state != StateBuilding {
		if s.cart.Empty() {
			return apperror.ErrEmptyCart
		}
		return apperror.NewBadRequestError("Checkout in progress")
	}
	s.state = StateAwaitingPayment
	return nil
}

// CancelPayment closes the dialog and returns to Building.
func (s *Session) CancelPayment() error {
	if s.state != StateAwaitingPayment {
		return apperror.NewBadRequestError("No payment in progress")
	}
	s.state = StateBuilding
	return nil
}

// BeginSubmit validates the payment intent and freezes the finalization
// snapshot. Entering Submitting requires a non-empty cart and, for cash,
// tendered >= total. The cart is NOT cleared here: clearing happens only
// after the backend confirms, so a failed submission can be retried.
func (s *Session) BeginSubmit(discountPct float64, intent PaymentIntent) (*Snapshot, error) {
	if s.state != StateAwaitingPayment && s.state != StateBuilding {
		return nil, apperror.NewBadRequestError("Nothing to submit")
	}
	if s.cart.Empty() {
		return nil, apperror.ErrEmptyCart
	}
	if !intent.Method.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
	if discountPct < 0 || discountPct > 100 {
		return nil, apperror.NewBadRequestError("Discount must be between 0 and 100")
	}

	totals := s.cart.Totals(discountPct, intent.AmountTendered, intent.Method)
	if intent.Method.IsCash() && intent.AmountTendered < totals.Total {
		return nil, apperror.ErrInsufficientPayment
	}

	s.pending = &Snapshot{
		Lines:   s.cart.Lines(),
		Totals:  totals,
		Payment: intent,
		TakenAt: time.Now(),
	}
	s.state = StateSubmitting
	return s.pending, nil
}

// Complete records backend confirmation: the cart is cleared and the
// session is ready for the next sale.
func (s *Session) Complete() {
	if s.state != StateSubmitting {
		return
	}
	s.cart.Clear()
	s.pending = nil
	s.state = StateCompleted
}

// Fail records a failed submission: the cart is retained for retry and the
// session drops back to Building.
func (s *Session) Fail() {
	if s.state != StateSubmitting {
		return
	}
	s.pending = nil
	s.state = StateBuilding
}

func (s *Session) syncBuildState() {
	if s.cart.Empty() {
		s.state = StateIdle
	} else {
		s.state = StateBuilding
	}
}
