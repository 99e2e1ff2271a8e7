package order

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every lookup failure for an unknown ID.
	ErrNotFound = errors.New("order not found")

	// ErrIDsExhausted is returned once every ID up to MaxID has been issued.
	ErrIDsExhausted = errors.New("order id space exhausted")
)

// NotFoundError reports the ID that could not be found.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order ID %d not found.", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
