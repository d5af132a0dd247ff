package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/adapter/kafka"
	"boost-engine/internal/adapter/memory"
	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

// stalledBroker holds every delivery until release is closed.
type stalledBroker struct {
	release chan struct{}
	got     chan domain.BoostEvent
}

func (b *stalledBroker) Publish(ctx context.Context, ev domain.BoostEvent) error {
	select {
	case <-b.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	b.got <- ev
	return nil
}

func TestClickDoesNotWaitForEventDelivery(t *testing.T) {
	clock := newTestClock()
	store := memory.NewStore()
	broker := &stalledBroker{release: make(chan struct{}), got: make(chan domain.BoostEvent, 8)}
	events := kafka.NewDispatcher(broker, nil, kafka.DispatcherConfig{Buffer: 8, WriteTimeout: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- events.Serve(ctx) }()

	svc := NewBoostUseCase(store, events, nil, Options{Clock: clock.Now})
	view, err := svc.CreateBoost(context.Background(), admission("p1", "pay-1", 1, "1.00", "1.00"))
	require.NoError(t, err)

	clickCtx, clickCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer clickCancel()
	started := time.Now()
	res, err := svc.RecordClick(clickCtx, port.ClickRef{BoostID: view.ID}, domain.ClickMeta{})
	took := time.Since(started)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, domain.StatusCompleted, res.Status)
	assert.Less(t, took, 100*time.Millisecond)

	close(broker.release)
	var types []domain.BoostEventType
	for range 2 {
		select {
		case ev := <-broker.got:
			types = append(types, ev.Type)
		case <-time.After(2 * time.Second):
			t.Fatal("queued event was not delivered")
		}
	}
	assert.Equal(t, []domain.BoostEventType{domain.EventBoostCreated, domain.EventBoostCompleted}, types)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestManualTransitionDoesNotWaitForEventDelivery(t *testing.T) {
	clock := newTestClock()
	store := memory.NewStore()
	broker := &stalledBroker{release: make(chan struct{}), got: make(chan domain.BoostEvent, 8)}
	defer close(broker.release)
	events := kafka.NewDispatcher(broker, nil, kafka.DispatcherConfig{Buffer: 8, WriteTimeout: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = events.Serve(ctx) }()

	svc := NewBoostUseCase(store, events, nil, Options{Clock: clock.Now})
	view, err := svc.CreateBoost(context.Background(), admission("p1", "pay-1", 5, "1.00", "5.00"))
	require.NoError(t, err)

	opCtx, opCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer opCancel()
	started := time.Now()
	paused, err := svc.Pause(opCtx, view.ID, "op")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, paused.Status)
	assert.Less(t, time.Since(started), 100*time.Millisecond)
}
