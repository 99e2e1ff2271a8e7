// Package broadcaster publishes order events to a message broker in the
// background, so that placing an order never waits on the broker.
package broadcaster

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"coffee/domain/order"
)

const flushTimeout = 5 * time.Second

// Message is one broker record.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Sink delivers messages to a broker.
type Sink interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

type Stats struct {
	Published uint64
	Dropped   uint64
	Failed    uint64
}

type Broadcaster struct {
	sink  Sink
	queue chan Message
	log   *zap.Logger

	// mu orders Offer against the final flush: once stopped is set no
	// message can enter the queue.
	mu      sync.RWMutex
	stopped bool

	published atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

// New creates a broadcaster holding at most size pending messages.
func New(sink Sink, size int, log *zap.Logger) *Broadcaster {
	if size <= 0 {
		size = 1
	}
	return &Broadcaster{
		sink:  sink,
		queue: make(chan Message, size),
		log:   log.Named("broadcaster"),
	}
}

// Offer encodes ev and queues it without blocking. The trace context of
// ctx travels with the message. It returns false when the queue is full
// or Run has begun its final flush; both count as dropped.
func (b *Broadcaster) Offer(ctx context.Context, ev order.Placed) bool {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.failed.Add(1)
		b.log.Error("encode event", zap.Int64("order_id", int64(ev.ID)), zap.Error(err))
		return false
	}

	headers := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, headers)
	headers["event-type"] = ev.Type

	msg := Message{
		Key:     []byte(strconv.FormatInt(int64(ev.ID), 10)),
		Value:   payload,
		Headers: headers,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		b.dropped.Add(1)
		return false
	}
	select {
	case b.queue <- msg:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

// Run publishes queued messages until ctx is done, then makes one bounded
// attempt to flush what is still queued.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("started")
	defer b.log.Info("stopped")

	for {
		select {
		case <-ctx.Done():
			b.flush()
			return
		case msg := <-b.queue:
			b.send(ctx, msg)
		}
	}
}

func (b *Broadcaster) flush() {
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	for {
		select {
		case msg := <-b.queue:
			b.send(ctx, msg)
		default:
			return
		}
	}
}

// Failures are counted and logged; there is no retry.
func (b *Broadcaster) send(ctx context.Context, msg Message) {
	if err := b.sink.Send(ctx, msg); err != nil {
		b.failed.Add(1)
		b.log.Warn("publish event", zap.ByteString("key", msg.Key), zap.Error(err))
		return
	}
	b.published.Add(1)
}

func (b *Broadcaster) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Dropped:   b.dropped.Load(),
		Failed:    b.failed.Load(),
	}
}

// Close releases the sink. Call it after Run has returned.
func (b *Broadcaster) Close() error {
	return b.sink.Close()
}
