package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port/mocks"
)

type blockingPublisher struct {
	release chan struct{}

	mu  sync.Mutex
	got []string
}

func (p *blockingPublisher) Publish(ctx context.Context, ev domain.BoostEvent) error {
	select {
	case <-p.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, ev.BoostID)
	return nil
}

func (p *blockingPublisher) delivered() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.got...)
}

func eventFor(id string) domain.BoostEvent {
	ev := testEvent()
	ev.BoostID = id
	return ev
}

func TestDispatcherPublishDoesNotBlock(t *testing.T) {
	slow := &blockingPublisher{release: make(chan struct{})}
	d := NewDispatcher(slow, nil, DispatcherConfig{Buffer: 2, WriteTimeout: time.Minute})

	start := time.Now()
	require.NoError(t, d.Publish(context.Background(), eventFor("b-1")))
	require.NoError(t, d.Publish(context.Background(), eventFor("b-2")))

	err := d.Publish(context.Background(), eventFor("b-3"))
	require.ErrorIs(t, err, ErrQueueFull)
	assert.Contains(t, err.Error(), "b-3")
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.Empty(t, slow.delivered())
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	slow := &blockingPublisher{release: make(chan struct{})}
	close(slow.release)
	d := NewDispatcher(slow, nil, DispatcherConfig{Buffer: 8})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Serve(ctx) }()

	for _, id := range []string{"b-1", "b-2", "b-3"} {
		require.NoError(t, d.Publish(context.Background(), eventFor(id)))
	}
	assert.Eventually(t, func() bool { return len(slow.delivered()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"b-1", "b-2", "b-3"}, slow.delivered())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestDispatcherFlushesOnShutdown(t *testing.T) {
	slow := &blockingPublisher{release: make(chan struct{})}
	close(slow.release)
	d := NewDispatcher(slow, nil, DispatcherConfig{Buffer: 8})

	for _, id := range []string{"b-1", "b-2", "b-3"} {
		require.NoError(t, d.Publish(context.Background(), eventFor(id)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, d.Serve(ctx), context.Canceled)
	assert.Equal(t, []string{"b-1", "b-2", "b-3"}, slow.delivered())
}

func TestDispatcherKeepsGoingAfterDeliveryError(t *testing.T) {
	next := mocks.NewMockEventPublisher(t)
	next.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.BoostEvent) bool { return e.BoostID == "b-1" })).
		Return(errors.New("leader not available")).
		Once()
	next.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.BoostEvent) bool { return e.BoostID == "b-2" })).
		Return(nil).
		Once()

	d := NewDispatcher(next, nil, DispatcherConfig{Buffer: 4})
	require.NoError(t, d.Publish(context.Background(), eventFor("b-1")))
	require.NoError(t, d.Publish(context.Background(), eventFor("b-2")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, d.Serve(ctx), context.Canceled)
}

func TestDispatcherBoundsEachDelivery(t *testing.T) {
	stuck := &blockingPublisher{release: make(chan struct{})}
	d := NewDispatcher(stuck, nil, DispatcherConfig{Buffer: 4, WriteTimeout: 20 * time.Millisecond})
	require.NoError(t, d.Publish(context.Background(), eventFor("b-1")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.ErrorIs(t, d.Serve(ctx), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, stuck.delivered())
}
