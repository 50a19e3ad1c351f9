package service

import (
	"context"
	"sync"

	"bakery-storefront/internal/model"

	"gorm.io/gorm"
)

// Hand-written fakes for the backend client and the local stores.

type fakeBackend struct {
	mu sync.Mutex

	purchaseCalls int
	lastPurchase  *model.PurchaseRequest
	purchaseResp  *model.PurchaseResponse
	purchaseErr   error

	// When set, SubmitPurchase signals entered and then waits on
	// release, letting tests hold a submission in flight.
	entered chan struct{}
	release chan struct{}

	loginResp   *model.LoginResponse
	loginErr    error
	profile     *model.UserResponse
	profileErr  error
	updated     *model.UserResponse
	updatedErr  error
	password    *model.UserResponse
	passwordErr error

	listed    []map[string]any
	listedErr error
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeBackend) GetProfile(ctx context.Context, token string, userID int64) (*model.UserResponse, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, token string, userID int64, req *model.ProfileUpdateRequest) (*model.UserResponse, error) {
	if f.updatedErr != nil {
		return nil, f.updatedErr
	}
	return f.updated, nil
}

func (f *fakeBackend) UpdatePassword(ctx context.Context, token string, userID int64, req *model.PasswordUpdateRequest) (*model.UserResponse, error) {
	if f.passwordErr != nil {
		return nil, f.passwordErr
	}
	return f.password, nil
}

func (f *fakeBackend) SubmitPurchase(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	f.mu.Lock()
	f.purchaseCalls++
	f.lastPurchase = req
	entered := f.entered
	release := f.release
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}

	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	return f.purchaseResp, nil
}

func (f *fakeBackend) ListTransactions(ctx context.Context, token string) ([]map[string]any, error) {
	if f.listedErr != nil {
		return nil, f.listedErr
	}
	return f.listed, nil
}

func (f *fakeBackend) TransactionHistory(ctx context.Context, token string) ([]*model.TransactionDetail, error) {
	return nil, nil
}

func (f *fakeBackend) TransactionDetails(ctx context.Context, token string, transactionID int64) (*model.TransactionDetail, error) {
	return nil, nil
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purchaseCalls
}

func (f *fakeBackend) sentRequest() *model.PurchaseRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPurchase
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items []model.CartItem
}

func (r *fakeCartRepo) List(ctx context.Context) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.CartItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeCartRepo) Upsert(ctx context.Context, item *model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ProductID == item.ProductID {
			r.items[i].Quantity += item.Quantity
			r.items[i].UnitPrice = item.UnitPrice
			return nil
		}
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ProductID == productID {
			r.items[i].Quantity = quantity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCartRepo) Remove(ctx context.Context, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

func (r *fakeCartRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeTransactionRepo struct {
	mu    sync.Mutex
	saved *model.LastTransaction
}

func (r *fakeTransactionRepo) SaveLast(ctx context.Context, record *model.LastTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = record
	return nil
}

func (r *fakeTransactionRepo) GetLast(ctx context.Context) (*model.LastTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved, nil
}

type fakeSessionRepo struct {
	mu      sync.Mutex
	session *model.Session
}

func (r *fakeSessionRepo) Get(ctx context.Context) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session, nil
}

func (r *fakeSessionRepo) Set(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = session
	return nil
}

func (r *fakeSessionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
