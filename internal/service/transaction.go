package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// TransactionService covers the read-only transaction views: the
// user-facing history and the admin listing.
type TransactionService interface {
	ListAll(ctx context.Context) ([]dto.AdminTransaction, error)
	History(ctx context.Context) ([]*model.TransactionDetail, error)
	Details(ctx context.Context, transactionID int64) (*model.TransactionDetail, error)
}

type transactionServiceImpl struct {
	backend     client.BackendClient
	sessionRepo repository.SessionRepository
}

func NewTransactionService(backend client.BackendClient, sessionRepo repository.SessionRepository) TransactionService {
	return &transactionServiceImpl{
		backend:     backend,
		sessionRepo: sessionRepo,
	}
}

func (s *transactionServiceImpl) ListAll(ctx context.Context) ([]dto.AdminTransaction, error) {
	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.backend.ListTransactions(ctx, session.Token)
	if err != nil {
		return nil, s.handleAuthError(ctx, err)
	}

	transactions := make([]dto.AdminTransaction, len(raw))
	for i, row := range raw {
		transactions[i] = NormalizeTransaction(row)
	}

	return transactions, nil
}

func (s *transactionServiceImpl) History(ctx context.Context) ([]*model.TransactionDetail, error) {
	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.backend.TransactionHistory(ctx, session.Token)
	if err != nil {
		return nil, s.handleAuthError(ctx, err)
	}

	return history, nil
}

func (s *transactionServiceImpl) Details(ctx context.Context, transactionID int64) (*model.TransactionDetail, error) {
	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	details, err := s.backend.TransactionDetails(ctx, session.Token, transactionID)
	if err != nil {
		return nil, s.handleAuthError(ctx, err)
	}

	return details, nil
}

func (s *transactionServiceImpl) requireSession(ctx context.Context) (*model.Session, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}

	return session, nil
}

func (s *transactionServiceImpl) handleAuthError(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := s.sessionRepo.Clear(ctx); clearErr != nil {
			return fmt.Errorf("clear session: %w", clearErr)
		}
	}

	return err
}

// NormalizeTransaction flattens the loosely named fields the backend's
// listing may use into one fixed shape. Fallback order per field:
//
//	id:             id, idTransaccion
//	identification: identificacion, usuario, cliente
//	date:           fechaHora, fecha, fechaTransaccion
//	status:         estado, status
//	value:          valorTx, valor, monto
func NormalizeTransaction(raw map[string]any) dto.AdminTransaction {
	return dto.AdminTransaction{
		ID:             pickString(raw, "id", "idTransaccion"),
		Identification: pickString(raw, "identificacion", "usuario", "cliente"),
		Date:           pickString(raw, "fechaHora", "fecha", "fechaTransaccion"),
		Status:         pickString(raw, "estado", "status"),
		Value:          pickDecimal(raw, "valorTx", "valor", "monto"),
	}
}

// pickString returns the first present, non-null value under the given
// keys, rendering numbers without a trailing fraction.
func pickString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}

	return ""
}

func pickDecimal(raw map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		}
	}

	return decimal.Zero
}
