package store

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the base error for every precondition failure:
// no logged-in user, an unknown id, or a product in the wrong status.
// Callers can match it with errors.Is and inspect the wrapped detail.
var ErrInvalidOperation = errors.New("invalid operation")

var (
	ErrNotLoggedIn     = fmt.Errorf("%w: no user is logged in", ErrInvalidOperation)
	ErrProductNotFound = fmt.Errorf("%w: product not found", ErrInvalidOperation)
	ErrOrderNotFound   = fmt.Errorf("%w: order not found", ErrInvalidOperation)
	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrInvalidOperation)
	ErrNotPurchasable  = fmt.Errorf("%w: product is not active", ErrInvalidOperation)
)
