package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
	"boost-engine/internal/metrics"
)

// ErrQueueFull is returned by Dispatcher.Publish when the event buffer has no
// room left. The event is dropped.
var ErrQueueFull = errors.New("event queue full")

// DispatcherConfig tunes a Dispatcher.
type DispatcherConfig struct {
	// Buffer is how many events may wait for delivery.
	Buffer int
	// WriteTimeout bounds a single delivery.
	WriteTimeout time.Duration
}

// Dispatcher queues lifecycle events in memory and delivers them to the next
// publisher from its own goroutine. Publish never blocks. Events are
// delivered one at a time in the order they were queued. It implements
// suture.Service and port.EventPublisher.
type Dispatcher struct {
	next         port.EventPublisher
	logger       *slog.Logger
	queue        chan domain.BoostEvent
	writeTimeout time.Duration
}

var _ port.EventPublisher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher in front of next.
func NewDispatcher(next port.EventPublisher, logger *slog.Logger, cfg DispatcherConfig) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &Dispatcher{
		next:         next,
		logger:       logger,
		queue:        make(chan domain.BoostEvent, cfg.Buffer),
		writeTimeout: cfg.WriteTimeout,
	}
}

// Publish queues event for delivery and returns immediately.
func (d *Dispatcher) Publish(_ context.Context, event domain.BoostEvent) error {
	select {
	case d.queue <- event:
		return nil
	default:
		metrics.EventsPublished.WithLabelValues("dropped").Inc()
		return fmt.Errorf("%w: dropped %s for boost %s", ErrQueueFull, event.Type, event.BoostID)
	}
}

// Serve delivers queued events until ctx is done, then flushes what is left
// in the buffer.
func (d *Dispatcher) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.flush(ctx)
			return ctx.Err()
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		}
	}
}

func (d *Dispatcher) String() string {
	return "event-dispatcher"
}

func (d *Dispatcher) flush(ctx context.Context) {
	for {
		select {
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev domain.BoostEvent) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.writeTimeout)
	defer cancel()

	if err := d.next.Publish(wctx, ev); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		d.logger.Warn("deliver boost event failed",
			slog.String("event", string(ev.Type)),
			slog.String("boost_id", ev.BoostID),
			slog.Any("error", err),
		)
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
}
