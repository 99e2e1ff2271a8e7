package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"coffee/domain/order"
	"coffee/registry"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Placed
	accept bool
}

func (p *recordingPublisher) Offer(_ context.Context, ev order.Placed) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.accept
}

// blockingPublisher never returns from Offer until released.
type blockingPublisher struct{ release chan struct{} }

func (p blockingPublisher) Offer(context.Context, order.Placed) bool {
	<-p.release
	return true
}

func newService(t *testing.T, backend string, pub Publisher) *OrderService {
	t.Helper()
	reg, err := registry.Open(backend, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })
	return NewOrderService(reg, pub, zaptest.NewLogger(t))
}

func TestPlaceAndLookupExample(t *testing.T) {
	for _, backend := range []string{registry.BackendMemory, registry.BackendPebble} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			svc := newService(t, backend, nil)

			first, err := svc.PlaceOrder(ctx, order.Request{Type: order.Americano, Size: order.Medium, Customer: "Ronaldo"})
			require.NoError(t, err)
			assert.Equal(t, order.Order{ID: 1, Status: order.StatusPreparing}, first)

			second, err := svc.PlaceOrder(ctx, order.Request{})
			require.NoError(t, err)
			assert.Equal(t, order.Order{ID: 2, Status: order.StatusPreparing}, second)

			got, err := svc.GetOrderStatus(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, order.Order{ID: 1, Status: order.StatusPreparing}, got)

			_, err = svc.GetOrderStatus(ctx, 99)
			require.Error(t, err)
			assert.True(t, errors.Is(err, order.ErrNotFound))
			assert.Equal(t, "Order ID 99 not found.", err.Error())
		})
	}
}

func TestConcurrentPlaceThenLookup(t *testing.T) {
	const n = 1000
	ctx := context.Background()
	svc := newService(t, registry.BackendMemory, nil)

	placed := make(chan order.Order, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := svc.PlaceOrder(ctx, order.Request{Type: order.Latte})
			assert.NoError(t, err)
			placed <- o
		}()
	}
	wg.Wait()
	close(placed)

	ids := make(map[order.ID]struct{}, n)
	for o := range placed {
		require.Positive(t, int64(o.ID))
		_, dup := ids[o.ID]
		require.False(t, dup, "duplicate id %d", o.ID)
		ids[o.ID] = struct{}{}
	}
	require.Len(t, ids, n)

	var lookups sync.WaitGroup
	for id := range ids {
		lookups.Add(1)
		go func(id order.ID) {
			defer lookups.Done()
			o, err := svc.GetOrderStatus(ctx, id)
			assert.NoError(t, err)
			assert.Equal(t, order.StatusPreparing, o.Status)
		}(id)
	}
	lookups.Wait()
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	pub := &recordingPublisher{accept: true}
	svc := newService(t, registry.BackendMemory, pub)
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	o, err := svc.PlaceOrder(context.Background(), order.Request{Type: order.Mocha, Size: order.Large, Customer: "Ada"})
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, o.ID, ev.ID)
	assert.Equal(t, order.StatusPreparing, ev.Status)
	assert.Equal(t, "mocha", ev.Coffee)
	assert.Equal(t, "large", ev.Size)
	assert.Equal(t, "Ada", ev.Customer)
	assert.Equal(t, at, ev.At)
}

func TestPlaceOrderIgnoresRejectedEvent(t *testing.T) {
	pub := &recordingPublisher{accept: false}
	svc := newService(t, registry.BackendMemory, pub)

	o, err := svc.PlaceOrder(context.Background(), order.Request{})
	require.NoError(t, err)

	got, err := svc.GetOrderStatus(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, got.Status)
}

func TestLookupSeesStatusBeforeEventIsOffered(t *testing.T) {
	release := make(chan struct{})
	svc := newService(t, registry.BackendMemory, blockingPublisher{release: release})

	done := make(chan order.Order, 1)
	go func() {
		o, _ := svc.PlaceOrder(context.Background(), order.Request{})
		done <- o
	}()

	// The first ID is 1 and its status is written before Offer is called.
	require.Eventually(t, func() bool {
		_, err := svc.GetOrderStatus(context.Background(), 1)
		return err == nil
	}, time.Second, time.Millisecond)

	close(release)
	o := <-done
	assert.Equal(t, order.ID(1), o.ID)
}
