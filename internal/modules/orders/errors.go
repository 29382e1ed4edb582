package orders

import "errors"

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotActionable     = errors.New("order not actionable")
)
