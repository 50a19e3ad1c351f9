package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bakery-storefront/internal/config"
	"bakery-storefront/internal/model"
)

// ErrUnauthorized is returned for any 401 from the backend. Callers on
// authenticated paths must clear the stored session when they see it.
var ErrUnauthorized = errors.New("backend rejected the credentials")

// BackendError carries a non-2xx answer that is not an auth failure.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Message)
}

// BackendClient wraps every REST endpoint of the remote bakery service.
// The base URL is configured once; no other component talks to the
// backend directly.
type BackendClient interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, token string, userID int64) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, token string, userID int64, req *model.ProfileUpdateRequest) (*model.UserResponse, error)
	UpdatePassword(ctx context.Context, token string, userID int64, req *model.PasswordUpdateRequest) (*model.UserResponse, error)
	SubmitPurchase(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseResponse, error)
	ListTransactions(ctx context.Context, token string) ([]map[string]any, error)
	TransactionHistory(ctx context.Context, token string) ([]*model.TransactionDetail, error)
	TransactionDetails(ctx context.Context, token string, transactionID int64) (*model.TransactionDetail, error)
}

type backendClientImpl struct {
	httpClient *http.Client
	baseURL    string
}

func NewBackendClient(backendCfg *config.Backend) BackendClient {
	return &backendClientImpl{
		httpClient: &http.Client{
			Timeout: backendCfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(backendCfg.BaseURL, "/"),
	}
}

func (c *backendClientImpl) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	payload := &model.LoginRequest{
		CorreoUsuario: email,
		ClaveUsrio:    password,
	}

	var result model.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/usuario/login", "", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) GetProfile(ctx context.Context, token string, userID int64) (*model.UserResponse, error) {
	var result model.UserResponse
	path := fmt.Sprintf("/usuario/profile/%d", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) UpdateProfile(ctx context.Context, token string, userID int64, req *model.ProfileUpdateRequest) (*model.UserResponse, error) {
	var result model.UserResponse
	path := fmt.Sprintf("/usuario/%d", userID)
	if err := c.doJSON(ctx, http.MethodPut, path, token, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) UpdatePassword(ctx context.Context, token string, userID int64, req *model.PasswordUpdateRequest) (*model.UserResponse, error) {
	var result model.UserResponse
	path := fmt.Sprintf("/usuario/%d/password", userID)
	if err := c.doJSON(ctx, http.MethodPut, path, token, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) SubmitPurchase(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	var result model.PurchaseResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/transacciones/realizarCompra", "", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) ListTransactions(ctx context.Context, token string) ([]map[string]any, error) {
	var result []map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/api/transacciones/getAll", token, nil, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *backendClientImpl) TransactionHistory(ctx context.Context, token string) ([]*model.TransactionDetail, error) {
	var result []*model.TransactionDetail
	if err := c.doJSON(ctx, http.MethodGet, "/transaccion/historial", token, nil, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *backendClientImpl) TransactionDetails(ctx context.Context, token string, transactionID int64) (*model.TransactionDetail, error) {
	var result model.TransactionDetail
	path := fmt.Sprintf("/transaccion/detalles/%d", transactionID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *backendClientImpl) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &BackendError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode backend response: %w", err)
		}
	}

	return nil
}

// readErrorMessage prefers the backend's {"message": ...} payload and
// falls back to the raw body.
func readErrorMessage(body io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(body, 4096))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return strings.TrimSpace(string(b))
}
