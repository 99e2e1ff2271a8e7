package order

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{ID: 99})

	assert.Equal(t, "Order ID 99 not found.", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, ID(99), nf.ID)
}

func TestNewPlaced(t *testing.T) {
	ev := NewPlaced(
		Order{ID: 3, Status: StatusPreparing},
		Request{Type: Americano, Size: Medium, Customer: "Ronaldo"},
		testTime,
	)

	assert.Equal(t, 1, ev.V)
	assert.Equal(t, EventPlaced, ev.Type)
	assert.Equal(t, ID(3), ev.ID)
	assert.Equal(t, "americano", ev.Coffee)
	assert.Equal(t, "medium", ev.Size)
	assert.Equal(t, "Ronaldo", ev.Customer)
}

func TestEnumStringUnknown(t *testing.T) {
	assert.Equal(t, "CoffeeType(42)", CoffeeType(42).String())
	assert.Equal(t, "Size(-1)", Size(-1).String())
}
