package order

import "time"

const EventPlaced = "order.placed"

// Placed is published after an order has been registered.
type Placed struct {
	V        int       `json:"v"`
	Type     string    `json:"type"`
	ID       ID        `json:"id"`
	Status   Status    `json:"status"`
	Coffee   string    `json:"coffee"`
	Size     string    `json:"size"`
	Customer string    `json:"customer,omitempty"`
	At       time.Time `json:"at"`
}

// NewPlaced builds the event for a freshly placed order.
func NewPlaced(o Order, req Request, at time.Time) Placed {
	return Placed{
		V:        1,
		Type:     EventPlaced,
		ID:       o.ID,
		Status:   o.Status,
		Coffee:   req.Type.String(),
		Size:     req.Size.String(),
		Customer: req.Customer,
		At:       at.UTC(),
	}
}
