package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery-storefront/internal/config"
	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) BackendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewBackendClient(&config.Backend{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	})
}

func TestLoginSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/usuario/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sophy@example.com", body.CorreoUsuario)
		assert.Equal(t, "secret", body.ClaveUsrio)

		json.NewEncoder(w).Encode(model.LoginResponse{
			ID:            7,
			LoginUsrio:    "sophy",
			CorreoUsuario: "sophy@example.com",
			Token:         "tok-123",
		})
	})

	resp, err := c.Login(context.Background(), "sophy@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "tok-123", resp.Token)
}

func TestLoginUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "sophy@example.com", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetProfileSendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuario/profile/7", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(model.UserResponse{
			Success: true,
			Usuario: &model.UserProfile{ID: 7, LoginUsrio: "sophy"},
		})
	})

	resp, err := c.GetProfile(context.Background(), "tok-123", 7)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "sophy", resp.Usuario.LoginUsrio)
}

func TestSubmitPurchase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transacciones/realizarCompra", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["idMetodoPago"])
		assert.Equal(t, "VISA", body["idFranquicia"])
		items, ok := body["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "ok",
			"transaccion": map[string]any{
				"id":     42,
				"fecha":  "2026-08-20T10:00:00Z",
				"valor":  5.95,
				"estado": 1,
				"metodoPago": map[string]any{
					"tipo": "TARJETA",
				},
			},
		})
	})

	resp, err := c.SubmitPurchase(context.Background(), &model.PurchaseRequest{
		IDFranquicia:   "VISA",
		IDMetodoPago:   1,
		NumTarjeta:     "4111111111111111",
		Identificacion: "1020304050",
		Referencia:     "REF-abc",
		Items: []model.PurchaseItem{
			{IDProducto: 1, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("2.50")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Transaccion)
	assert.Equal(t, int64(42), resp.Transaccion.ID)
	assert.True(t, resp.Transaccion.Valor.Equal(decimal.RequireFromString("5.95")))
	assert.Equal(t, "TARJETA", resp.Transaccion.MetodoPago.Tipo)
}

func TestBackendErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "backend exploded"})
	})

	_, err := c.SubmitPurchase(context.Background(), &model.PurchaseRequest{})

	var bErr *BackendError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, http.StatusInternalServerError, bErr.StatusCode)
	assert.Equal(t, "backend exploded", bErr.Message)
}

func TestListTransactionsKeepsLooseFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transacciones/getAll", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			{"idTransaccion": 9, "monto": 12.5},
		})
	})

	rows, err := c.ListTransactions(context.Background(), "tok-123")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, float64(9), rows[0]["idTransaccion"])
}

func TestTransactionDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaccion/detalles/42", r.URL.Path)
		json.NewEncoder(w).Encode(model.TransactionDetail{ID: 42, Estado: "APROBADA"})
	})

	details, err := c.TransactionDetails(context.Background(), "tok-123", 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), details.ID)
	assert.Equal(t, "APROBADA", details.Estado)
}
