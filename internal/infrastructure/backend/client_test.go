package backend

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
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/pagination"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@loja.com", body["email"])

		json.NewEncoder(w).Encode(LoginResult{
			Token: "tok-123",
			User:  entity.User{ID: 1, Name: "Ana", Role: "cashier"},
		})
	})

	res, err := c.Login(context.Background(), "ana@loja.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.Token)
	assert.Equal(t, "Ana", res.User.Name)
}

func TestWithTokenInjectsBearer(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(entity.User{ID: 1, Name: "Ana"})
	})

	authed := c.WithToken("tok-123")
	_, err := authed.Profile(context.Background())
	require.NoError(t, err)
}

func TestErrorEnvelopeMapping(t *testing.T) {
	t.Parallel()

	t.Run("401 maps to session expired", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
		})

		_, err := c.Profile(context.Background())
		assert.ErrorIs(t, err, apperror.ErrSessionExpired)
	})

	t.Run("400 keeps backend message", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Estoque insuficiente"})
		})

		_, err := c.CreateSale(context.Background(), &entity.SaleRequest{})
		require.Error(t, err)
		assert.Equal(t, "Estoque insuficiente", apperror.GetAppError(err).Message)
	})

	t.Run("500 hides details", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.Profile(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Server error, please try again", apperror.GetAppError(err).Message)
	})

	t.Run("unreachable host is transport error", func(t *testing.T) {
		c := New("http://127.0.0.1:1", time.Second)
		_, err := c.Profile(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTransport))
	})

	t.Run("malformed body is transport error", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		_, err := c.Profile(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTransport))
	})
}

func TestProductByBarcode(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/barcode/7891000100103", r.URL.Path)
		json.NewEncoder(w).Encode(entity.Product{ID: 7, Name: "Cafe", Price: 12.5, Stock: 4})
	})

	p, err := c.ProductByBarcode(context.Background(), "7891000100103")
	require.NoError(t, err)
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, 4, p.Stock)
}

func TestListProductsQuery(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cafe", q.Get("search"))
		assert.Equal(t, "true", q.Get("low_stock"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "50", q.Get("limit"))
		json.NewEncoder(w).Encode([]entity.Product{{ID: 1}})
	})

	products, err := c.ListProducts(context.Background(), ProductFilter{
		Search:     "cafe",
		LowStock:   true,
		Pagination: pagination.Default(),
	})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCreateSalePayload(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales/", r.URL.Path)

		var req entity.SaleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, enum.PaymentCash, req.PaymentMethod)
		assert.Equal(t, 10.0, req.DiscountPercentage)
		assert.Equal(t, 50.0, req.AmountReceived)
		require.Len(t, req.Items, 1)
		assert.Equal(t, 12.5, req.Items[0].UnitPrice)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entity.Sale{ID: 99, FinalTotal: 35.77})
	})

	sale, err := c.CreateSale(context.Background(), &entity.SaleRequest{
		Items:              []entity.SaleItemRequest{{ProductID: 1, Quantity: 3, UnitPrice: 12.5}},
		PaymentMethod:      enum.PaymentCash,
		DiscountPercentage: 10,
		AmountReceived:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(99), sale.ID)
}
