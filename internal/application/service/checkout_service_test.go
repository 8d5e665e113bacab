package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv-client/internal/domain/entity"
	"pdv-client/internal/domain/enum"
	"pdv-client/internal/infrastructure/backend"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/money"
	"pdv-client/pkg/printer"
	"pdv-client/pkg/receipt"
)

type fakeDispatcher struct {
	ok       bool
	dispatch int
	lastJob  printer.Job
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, job printer.Job) bool {
	f.dispatch++
	f.lastJob = job
	return f.ok
}

func testPrinterService(d Dispatcher) *PrinterService {
	return &PrinterService{
		dispatcher: d,
		locale:     money.BRL,
		header:     receipt.Header{StoreName: "LOJA TESTE", DocTitle: "CUPOM FISCAL"},
		paperWidth: 32,
	}
}

// testBackend serves the two endpoints the checkout flow touches: barcode
// lookup and sale creation.
func testBackend(t *testing.T, saleStatus int, saleBody interface{}) (*backend.Client, *[]entity.SaleRequest) {
	t.Helper()

	var sales []entity.SaleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/products/barcode/789":
			json.NewEncoder(w).Encode(entity.Product{ID: 1, Name: "Cafe", Barcode: "789", Price: 12.50, Stock: 3})
		case r.URL.Path == "/products/barcode/000":
			json.NewEncoder(w).Encode(entity.Product{ID: 2, Name: "Esgotado", Barcode: "000", Price: 1, Stock: 0})
		case r.URL.Path == "/sales/" && r.Method == http.MethodPost:
			var req entity.SaleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			sales = append(sales, req)
			w.WriteHeader(saleStatus)
			json.NewEncoder(w).Encode(saleBody)
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	}))
	t.Cleanup(srv.Close)

	return backend.New(srv.URL, 5*time.Second), &sales
}

func testSession(t *testing.T, api *backend.Client) *session.Session {
	t.Helper()
	store := session.NewStore(time.Hour, money.BRL)
	return store.Create("tok", entity.User{ID: 1, Name: "Ana", Role: "cashier"}, api)
}

func TestCheckoutFlow(t *testing.T) {
	t.Parallel()

	api, sales := testBackend(t, http.StatusCreated, entity.Sale{ID: 7, FinalTotal: 23.77})
	sess := testSession(t, api)
	dispatcher := &fakeDispatcher{ok: true}
	svc := NewCheckoutService(money.BRL, testPrinterService(dispatcher))
	ctx := context.Background()

	// two scans of the same product merge into one line
	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)
	cart, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "R$ 25,00", cart.Display.Subtotal)
	assert.Equal(t, "building", cart.State)

	// payment dialog: 5% discount typed, R$ 30,00 tendered
	_, err = svc.OpenPayment(sess)
	require.NoError(t, err)
	_, err = svc.EditDiscount(sess, "input", "5")
	require.NoError(t, err)
	cart, err = svc.EditTender(sess, "input", "30")
	require.NoError(t, err)
	assert.Equal(t, "R$ 6,25", cart.Display.Change)

	result, err := svc.Finalize(ctx, sess, FinalizeInput{PaymentMethod: enum.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Sale.ID)
	assert.True(t, result.Printed)
	assert.Equal(t, 1, dispatcher.dispatch)
	assert.NotEmpty(t, dispatcher.lastJob.HTML)
	assert.NotEmpty(t, dispatcher.lastJob.ESCPOS)

	// the cart is cleared only after the backend confirmed
	assert.Empty(t, result.Cart.Items)
	assert.Equal(t, "completed", result.Cart.State)

	require.Len(t, *sales, 1)
	sent := (*sales)[0]
	assert.Equal(t, enum.PaymentCash, sent.PaymentMethod)
	assert.Equal(t, 5.0, sent.DiscountPercentage)
	assert.Equal(t, 30.0, sent.AmountReceived)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, 2, sent.Items[0].Quantity)
}

func TestScanRejectsBeyondStock(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Scan(ctx, sess, "789")
		require.NoError(t, err)
	}

	_, err := svc.Scan(ctx, sess, "789")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockConflict))

	// the rejection left the cart at the ceiling, not clamped beyond it
	view := svc.View(sess)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestScanOutOfStockProduct(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))

	_, err := svc.Scan(context.Background(), sess, "000")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockConflict))
}

func TestFinalizeFailureRetainsCart(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusBadRequest, map[string]string{"error": "Estoque insuficiente"})
	sess := testSession(t, api)
	dispatcher := &fakeDispatcher{ok: true}
	svc := NewCheckoutService(money.BRL, testPrinterService(dispatcher))
	ctx := context.Background()

	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, sess, FinalizeInput{PaymentMethod: enum.PaymentPix})
	require.Error(t, err)

	// nothing printed, cart kept for retry
	assert.Equal(t, 0, dispatcher.dispatch)
	view := svc.View(sess)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "building", view.State)
}

func TestFinalizeInsufficientCash(t *testing.T) {
	t.Parallel()

	api, sales := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))
	ctx := context.Background()

	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)

	tendered := 10.0 // total is 12.50
	_, err = svc.Finalize(ctx, sess, FinalizeInput{
		PaymentMethod:  enum.PaymentCash,
		AmountReceived: &tendered,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)
	assert.Empty(t, *sales, "nothing must reach the backend")
}

func TestFinalizeRejectsFractionalDiscount(t *testing.T) {
	t.Parallel()

	api, sales := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))
	ctx := context.Background()

	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)

	pct := 10.5
	_, err = svc.Finalize(ctx, sess, FinalizeInput{
		PaymentMethod:      enum.PaymentPix,
		DiscountPercentage: &pct,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Empty(t, *sales, "nothing must reach the backend")

	// the cart stays intact for a corrected retry
	view := svc.View(sess)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "building", view.State)
}

func TestFinalizePrintFailureDoesNotFailSale(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{ID: 7})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: false}))
	ctx := context.Background()

	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)

	result, err := svc.Finalize(ctx, sess, FinalizeInput{PaymentMethod: enum.PaymentPix})
	require.NoError(t, err)
	assert.False(t, result.Printed)
	assert.Equal(t, uint(7), result.Sale.ID)
	assert.Equal(t, "completed", result.Cart.State)
}

func TestClearResetsPaymentFields(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))
	ctx := context.Background()

	_, err := svc.Scan(ctx, sess, "789")
	require.NoError(t, err)
	_, err = svc.EditTender(sess, "input", "50")
	require.NoError(t, err)
	_, err = svc.EditDiscount(sess, "input", "10")
	require.NoError(t, err)

	view, err := svc.Clear(sess)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "idle", view.State)
	assert.Zero(t, view.Tender.Value)
	assert.Equal(t, 0, view.Discount)
}

func TestEditTenderUnknownEvent(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))

	_, err := svc.EditTender(sess, "hover", "")
	require.Error(t, err)
}

func TestPreviewReceipt(t *testing.T) {
	t.Parallel()

	api, _ := testBackend(t, http.StatusCreated, entity.Sale{})
	sess := testSession(t, api)
	svc := NewCheckoutService(money.BRL, testPrinterService(&fakeDispatcher{ok: true}))
	ctx := context.Background()

	_, err := svc.PreviewReceipt(sess, enum.PaymentCash)
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)

	_, err = svc.Scan(ctx, sess, "789")
	require.NoError(t, err)

	html, err := svc.PreviewReceipt(sess, enum.PaymentCash)
	require.NoError(t, err)
	assert.Contains(t, html, "LOJA TESTE")
	assert.Contains(t, html, "Cafe")
}
