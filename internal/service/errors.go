package service

import "errors"

var (
	// ErrNoSession means a protected operation ran without a stored
	// session; the caller should send the user to the login view.
	ErrNoSession = errors.New("no active session")

	// ErrEmptyCart blocks a checkout before any network call; the
	// caller should send the user back to the cart view.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInFlight rejects a submit while another one is still
	// waiting on the backend.
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
)

// BusinessError carries a failure the backend reported in its payload.
// The session and the cart are left untouched when it is returned.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}
