package store

import (
	"errors"
	"fmt"

	"quickbite-api/models"
)

// Every failure the engine reports is local and recoverable; the caller
// surfaces it to the user and carries on. Nothing here is fatal.
var (
	ErrInvalidCoupon  = errors.New("invalid coupon code")
	ErrEmptyCart      = errors.New("your cart is empty")
	ErrMissingAddress = errors.New("delivery address is required")
	ErrItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrTaskNotFound   = errors.New("delivery task not found")
)

// MinimumNotMetError reports a matched coupon whose order-value threshold
// the current subtotal does not reach. The message must carry the required
// minimum so the user knows how far off they are.
type MinimumNotMetError struct {
	Min int
}

func (e *MinimumNotMetError) Error() string {
	return fmt.Sprintf("minimum order value is ₹%d", e.Min)
}

// TransitionError wraps a rejected lifecycle transition together with the
// entity's current status so handlers can report valid next steps.
type TransitionError struct {
	Current models.OrderStatus
	Reason  error
}

func (e *TransitionError) Error() string { return e.Reason.Error() }
func (e *TransitionError) Unwrap() error { return e.Reason }

// TaskTransitionError is the delivery-task counterpart of TransitionError.
type TaskTransitionError struct {
	Current models.TaskStatus
	Reason  error
}

func (e *TaskTransitionError) Error() string { return e.Reason.Error() }
func (e *TaskTransitionError) Unwrap() error { return e.Reason }
