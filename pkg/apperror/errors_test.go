package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	t.Parallel()

	t.Run("401 forces session expiry", func(t *testing.T) {
		err := FromStatus(http.StatusUnauthorized, "token expired")
		assert.Same(t, ErrSessionExpired, err)
	})

	t.Run("403 is forbidden", func(t *testing.T) {
		assert.Same(t, ErrForbidden, FromStatus(http.StatusForbidden, ""))
	})

	t.Run("404 keeps backend message", func(t *testing.T) {
		err := FromStatus(http.StatusNotFound, "Produto não encontrado")
		assert.Equal(t, "Produto não encontrado", err.Message)
		assert.Equal(t, http.StatusNotFound, err.Code)
	})

	t.Run("5xx hides backend details", func(t *testing.T) {
		err := FromStatus(http.StatusBadGateway, "panic: nil pointer")
		assert.Equal(t, "Server error, please try again", err.Message)
		assert.Equal(t, KindTransport, err.Kind)
	})

	t.Run("other statuses keep the envelope message", func(t *testing.T) {
		err := FromStatus(http.StatusConflict, "Estoque insuficiente")
		assert.Equal(t, "Estoque insuficiente", err.Message)
	})
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKind(NewStockConflict("Cafe", 3), KindStockConflict))
	assert.True(t, IsKind(NewOutOfStock("Cafe"), KindStockConflict))
	assert.False(t, IsKind(NewBadRequestError("nope"), KindStockConflict))
	assert.False(t, IsKind(errors.New("plain"), KindTransport))
}

func TestGetAppErrorWrapsUnknown(t *testing.T) {
	t.Parallel()

	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)

	orig := NewPrintFailure("no strategy succeeded")
	assert.Same(t, orig, GetAppError(orig))
}

func TestStockConflictMessage(t *testing.T) {
	t.Parallel()

	err := NewStockConflict("Cafe", 3)
	assert.Equal(t, "Insufficient stock for Cafe: 3 available", err.Message)
	assert.Equal(t, http.StatusConflict, err.Code)
}
