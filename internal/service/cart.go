package service

import (
	"context"
	"fmt"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"
)

type CartService interface {
	GetCart(ctx context.Context) (*dto.CartResponse, error)
	AddItem(ctx context.Context, req *dto.AddItemRequest) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, productID int64) (*dto.CartResponse, error)
	Clear(ctx context.Context) (*dto.CartResponse, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context) (*dto.CartResponse, error) {
	return s.snapshot(ctx)
}

func (s *cartServiceImpl) AddItem(ctx context.Context, req *dto.AddItemRequest) (*dto.CartResponse, error) {
	if req.ProductID <= 0 {
		return nil, &checkout.ValidationError{Message: "product id is required"}
	}
	if req.Quantity < 1 {
		return nil, &checkout.ValidationError{Message: "quantity must be at least 1"}
	}
	if req.UnitPrice.IsNegative() {
		return nil, &checkout.ValidationError{Message: "unit price cannot be negative"}
	}

	item := &model.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return s.snapshot(ctx)
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		return nil, &checkout.ValidationError{Message: "quantity must be at least 1"}
	}

	if err := s.cartRepo.UpdateQuantity(ctx, productID, quantity); err != nil {
		return nil, fmt.Errorf("update cart quantity: %w", err)
	}

	return s.snapshot(ctx)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, productID int64) (*dto.CartResponse, error) {
	if err := s.cartRepo.Remove(ctx, productID); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}

	return s.snapshot(ctx)
}

func (s *cartServiceImpl) Clear(ctx context.Context) (*dto.CartResponse, error) {
	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	return s.snapshot(ctx)
}

// snapshot reloads the items and recomputes the totals, so every
// mutation answers with a consistent view.
func (s *cartServiceImpl) snapshot(ctx context.Context) (*dto.CartResponse, error) {
	items, err := s.cartRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	return &dto.CartResponse{
		Items:  items,
		Totals: checkout.ComputeTotals(items),
	}, nil
}
