package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValid(t *testing.T) {
	t.Parallel()

	for _, m := range []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentMethodIsCash(t *testing.T) {
	t.Parallel()

	assert.True(t, PaymentCash.IsCash())
	assert.False(t, PaymentPix.IsCash())
	assert.False(t, PaymentCreditCard.IsCash())
}

func TestPaymentMethodLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dinheiro", PaymentCash.Label())
	assert.Equal(t, "Cartão de Crédito", PaymentCreditCard.Label())
	assert.Equal(t, "Cartão de Débito", PaymentDebitCard.Label())
	assert.Equal(t, "PIX", PaymentPix.Label())
}
