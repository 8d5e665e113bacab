package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv-client/pkg/money"
)

func fixedNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2025, 3, 14, 15, 9, 26, 0, time.Local) }
	t.Cleanup(func() { now = orig })
}

func sampleReceipt() Receipt {
	return Receipt{
		Header:   Header{StoreName: "MERCADO CENTRAL", Tagline: "Ponto de Venda"},
		Operator: "Ana",
		Lines: []Line{
			{Name: "Cafe Torrado", Barcode: "7891000100103", Quantity: 3, UnitPrice: money.Money(1250)},
			{Name: "Pao Frances", Quantity: 1, UnitPrice: money.Money(225)},
		},
		Subtotal:           money.Money(3975),
		DiscountPercentage: 10,
		DiscountAmount:     money.Money(398),
		Total:              money.Money(3577),
		PaymentLabel:       "Dinheiro",
		Cash:               true,
		AmountReceived:     money.Money(5000),
		Change:             money.Money(1423),
	}
}

func TestRenderFullReceipt(t *testing.T) {
	fixedNow(t)

	html, err := Render(sampleReceipt(), money.BRL, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "MERCADO CENTRAL")
	assert.Contains(t, html, "CUPOM FISCAL")
	assert.Contains(t, html, "14/03/2025 15:09:26")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "1. Cafe Torrado")
	assert.Contains(t, html, "2. Pao Frances")
	assert.Contains(t, html, "7891000100103")
	assert.Contains(t, html, "R$ 39,75")
	assert.Contains(t, html, "Desconto (10%)")
	assert.Contains(t, html, "R$ 3,98")
	assert.Contains(t, html, "R$ 35,77")
	assert.Contains(t, html, "Valor Recebido:")
	assert.Contains(t, html, "R$ 50,00")
	assert.Contains(t, html, "Troco:")
	assert.Contains(t, html, "R$ 14,23")
	assert.Contains(t, html, "Obrigado pela preferência!")
}

func TestRenderLineTotalsRecomputed(t *testing.T) {
	fixedNow(t)

	html, err := Render(sampleReceipt(), money.BRL, Options{})
	require.NoError(t, err)

	// 3 x 12.50 printed as the recomputed line total
	assert.Contains(t, html, "R$ 37,50")
}

func TestRenderOmitsDiscountRowWhenZero(t *testing.T) {
	fixedNow(t)

	r := sampleReceipt()
	r.DiscountPercentage = 0
	r.DiscountAmount = 0
	r.Total = r.Subtotal

	html, err := Render(r, money.BRL, Options{})
	require.NoError(t, err)
	assert.NotContains(t, html, "Desconto")
}

func TestRenderOmitsCashRowsForCardPayment(t *testing.T) {
	fixedNow(t)

	r := sampleReceipt()
	r.Cash = false
	r.PaymentLabel = "Cartão de Crédito"
	r.AmountReceived = r.Total
	r.Change = 0

	html, err := Render(r, money.BRL, Options{})
	require.NoError(t, err)
	assert.Contains(t, html, "Cartão de Crédito")
	assert.NotContains(t, html, "Valor Recebido")
	assert.NotContains(t, html, "Troco")
}

func TestRenderDefaults(t *testing.T) {
	fixedNow(t)

	html, err := Render(Receipt{PaymentLabel: "Dinheiro"}, money.BRL, Options{})
	require.NoError(t, err)
	assert.Contains(t, html, "SISTEMA PDV")
	assert.Contains(t, html, "CUPOM FISCAL")
	assert.Contains(t, html, "Sistema")
}

func TestRenderAutoPrintScript(t *testing.T) {
	fixedNow(t)

	html, err := Render(sampleReceipt(), money.BRL, Options{AutoPrint: true, AutoClose: true})
	require.NoError(t, err)
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "window.close()")

	plain, err := Render(sampleReceipt(), money.BRL, Options{})
	require.NoError(t, err)
	assert.NotContains(t, plain, "window.print()")
}

func TestRenderIsSelfContained(t *testing.T) {
	fixedNow(t)

	html, err := Render(sampleReceipt(), money.BRL, Options{})
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<link"), "no external stylesheet")
	assert.False(t, strings.Contains(html, "src="), "no external script")
}
