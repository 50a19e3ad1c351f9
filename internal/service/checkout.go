package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/client"
	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"

	"github.com/google/uuid"
)

const (
	methodCard = 1
	methodPSE  = 2

	// The storefront only issues VISA franchise purchases.
	franchiseVisa = "VISA"
)

type CheckoutService interface {
	PayWithCard(ctx context.Context, input *checkout.CardInput) (*dto.CheckoutResult, error)
	PayWithPSE(ctx context.Context, input *checkout.PSEInput) (*dto.CheckoutResult, error)
	LastTransaction(ctx context.Context) (*model.LastTransaction, error)
}

type checkoutServiceImpl struct {
	backend         client.BackendClient
	cartRepo        repository.CartRepository
	transactionRepo repository.TransactionRepository
	submitTimeout   time.Duration

	// inFlight gates submissions: at most one purchase may wait on the
	// backend at a time, a second submit is rejected immediately.
	inFlight atomic.Bool
}

func NewCheckoutService(
	backend client.BackendClient,
	cartRepo repository.CartRepository,
	transactionRepo repository.TransactionRepository,
	submitTimeout time.Duration,
) CheckoutService {
	return &checkoutServiceImpl{
		backend:         backend,
		cartRepo:        cartRepo,
		transactionRepo: transactionRepo,
		submitTimeout:   submitTimeout,
	}
}

func (s *checkoutServiceImpl) PayWithCard(ctx context.Context, input *checkout.CardInput) (*dto.CheckoutResult, error) {
	// Card secrets never outlive the attempt, whatever its outcome.
	defer wipeCardSecrets(input)

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInFlight
	}
	defer s.inFlight.Store(false)

	items, err := s.loadNonEmptyCart(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkout.ValidateCard(input); err != nil {
		return nil, err
	}

	req := &model.PurchaseRequest{
		IDFranquicia:   franchiseVisa,
		IDMetodoPago:   methodCard,
		NumTarjeta:     checkout.StripCardNumber(input.Number),
		Identificacion: strings.TrimSpace(input.Identification),
	}

	return s.submit(ctx, req, items)
}

func (s *checkoutServiceImpl) PayWithPSE(ctx context.Context, input *checkout.PSEInput) (*dto.CheckoutResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInFlight
	}
	defer s.inFlight.Store(false)

	items, err := s.loadNonEmptyCart(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkout.ValidatePSE(input); err != nil {
		return nil, err
	}

	req := &model.PurchaseRequest{
		IDBanco:        input.BankID,
		IDMetodoPago:   methodPSE,
		Identificacion: strings.TrimSpace(input.Identification),
	}

	return s.submit(ctx, req, items)
}

func (s *checkoutServiceImpl) LastTransaction(ctx context.Context) (*model.LastTransaction, error) {
	return s.transactionRepo.GetLast(ctx)
}

func (s *checkoutServiceImpl) loadNonEmptyCart(ctx context.Context) ([]model.CartItem, error) {
	items, err := s.cartRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	return items, nil
}

// submit issues exactly one backend call. On success it records the
// transaction and clears the cart, in that order; on any failure the
// cart is left untouched and the user may retry.
func (s *checkoutServiceImpl) submit(ctx context.Context, req *model.PurchaseRequest, items []model.CartItem) (*dto.CheckoutResult, error) {
	req.Referencia = "REF-" + uuid.NewString()
	req.Items = make([]model.PurchaseItem, len(items))
	for i, item := range items {
		req.Items[i] = model.PurchaseItem{
			IDProducto:     item.ProductID,
			Cantidad:       item.Quantity,
			PrecioUnitario: item.UnitPrice,
		}
	}

	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	resp, err := s.backend.SubmitPurchase(submitCtx, req)
	if err != nil {
		return nil, fmt.Errorf("submit purchase: %w", err)
	}
	if !resp.Success || resp.Transaccion == nil {
		message := resp.Message
		if message == "" {
			message = "the purchase could not be processed"
		}
		return nil, &BusinessError{Message: message}
	}

	tx := resp.Transaccion
	record := &model.LastTransaction{
		TransactionID:   tx.ID,
		Date:            tx.Fecha,
		Value:           tx.Valor,
		Status:          tx.Estado,
		MethodType:      tx.MetodoPago.Tipo,
		MethodBank:      tx.MetodoPago.Banco,
		MethodFranchise: tx.MetodoPago.Franquicia,
		MethodCard:      tx.MetodoPago.NumTarjeta,
	}
	if err := s.transactionRepo.SaveLast(ctx, record); err != nil {
		return nil, fmt.Errorf("record last transaction: %w", err)
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart after purchase: %w", err)
	}

	return &dto.CheckoutResult{
		TransactionID: tx.ID,
		Date:          tx.Fecha,
		Value:         tx.Valor,
		Status:        tx.Estado,
		Method:        tx.MetodoPago,
		Totals:        checkout.ComputeTotals(nil),
	}, nil
}

func wipeCardSecrets(input *checkout.CardInput) {
	input.Number = ""
	input.CVV = ""
}
