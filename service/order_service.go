package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"coffee/domain/order"
	"coffee/registry"
)

// Publisher receives an event for every placed order.
// Offer must not block; it reports whether the event was accepted.
type Publisher interface {
	Offer(ctx context.Context, ev order.Placed) bool
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Offer(context.Context, order.Placed) bool { return true }

type OrderService struct {
	reg    *registry.Registry
	events Publisher
	log    *zap.Logger
	now    func() time.Time
}

// NewOrderService wires the service. A nil publisher disables events.
func NewOrderService(reg *registry.Registry, events Publisher, log *zap.Logger) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderService{
		reg:    reg,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// PlaceOrder registers a new order with the initial status.
// The request content is recorded in logs and events only.
func (s *OrderService) PlaceOrder(ctx context.Context, req order.Request) (order.Order, error) {
	id, err := s.reg.Allocate()
	if err != nil {
		s.log.Error("allocate order id", zap.Error(err))
		return order.Order{}, err
	}
	if err := s.reg.SetStatus(id, order.StatusPreparing); err != nil {
		s.log.Error("register order", zap.Int64("order_id", int64(id)), zap.Error(err))
		return order.Order{}, err
	}
	o := order.Order{ID: id, Status: order.StatusPreparing}

	if !s.events.Offer(ctx, order.NewPlaced(o, req, s.now())) {
		s.log.Warn("order event dropped", zap.Int64("order_id", int64(id)))
	}

	s.log.Info("order placed",
		zap.Int64("order_id", int64(id)),
		zap.Stringer("coffee", req.Type),
		zap.Stringer("size", req.Size),
		zap.String("customer", req.Customer),
	)
	return o, nil
}

// GetOrderStatus returns the current status of id, or an error matching
// order.ErrNotFound when the ID was never placed.
func (s *OrderService) GetOrderStatus(ctx context.Context, id order.ID) (order.Order, error) {
	st, err := s.reg.Status(id)
	if err != nil {
		return order.Order{}, err
	}
	return order.Order{ID: id, Status: st}, nil
}
