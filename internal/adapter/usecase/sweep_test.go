package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/adapter/memory"
	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

func TestSweepClearsFlagAndRejectsLaterClicks(t *testing.T) {
	clock := newTestClock()
	svc, store := newMemoryUseCase(t, clock)
	ctx := context.Background()

	a := admission("p1", "pay-1", 10, "1.00", "10.00")
	end := clock.Now().Add(time.Hour)
	a.EndDate = &end
	view, err := svc.CreateBoost(ctx, a)
	require.NoError(t, err)

	item, ok := store.Item(view.Target)
	require.True(t, ok)
	require.True(t, item.IsBoosted)

	clock.Advance(2 * time.Hour)
	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, err := svc.GetBoost(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, b.Status)
	assert.NotNil(t, b.ClosedAt)

	item, _ = store.Item(view.Target)
	assert.False(t, item.IsBoosted)
	assert.Zero(t, item.BoostPriority)

	for _, ref := range []port.ClickRef{{BoostID: view.ID}, {Target: &view.Target}} {
		res, err := svc.RecordClick(ctx, ref, domain.ClickMeta{Source: "search"})
		require.NoError(t, err)
		assert.False(t, res.Accepted)
	}

	b, err = svc.GetBoost(ctx, view.ID)
	require.NoError(t, err)
	assert.Zero(t, b.Stats.TotalClicks)
	assert.Equal(t, int64(10), b.Stats.RemainingClicks)
}

func TestSweepRacingClicksSettlesOnOneTerminalStatus(t *testing.T) {
	const (
		rounds    = 20
		maxClicks = 10
		clickers  = 30
		sweepers  = 4
	)
	for round := range rounds {
		clock := newTestClock()
		store := memory.NewStore()
		store.PutItem(domain.Item{ID: "p1", Type: domain.TargetProduct, Title: "Lamp", CreatedAt: clock.Now()}, true, true)
		svc := NewBoostUseCase(store, nil, nil, Options{
			ClickMaxAttempts: 1000,
			Clock:            clock.Now,
		})
		ctx := context.Background()

		a := admission("p1", fmt.Sprintf("pay-%d", round), maxClicks, "0.50", "5.00")
		end := clock.Now().Add(time.Millisecond)
		a.EndDate = &end
		view, err := svc.CreateBoost(ctx, a)
		require.NoError(t, err)

		var (
			wg       sync.WaitGroup
			accepted atomic.Int64
			failures atomic.Int64
		)
		start := make(chan struct{})
		for i := range clickers + sweepers + 1 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				switch {
				case i == 0:
					clock.Advance(2 * time.Millisecond)
				case i <= sweepers:
					if _, err := svc.SweepExpired(ctx); err != nil {
						failures.Add(1)
					}
				default:
					res, err := svc.RecordClick(ctx, port.ClickRef{BoostID: view.ID}, domain.ClickMeta{})
					if err != nil {
						failures.Add(1)
						return
					}
					if res.Accepted {
						accepted.Add(1)
					}
				}
			}()
		}
		close(start)
		wg.Wait()

		_, err = svc.SweepExpired(ctx)
		require.NoError(t, err)
		require.Zero(t, failures.Load())

		b, err := svc.GetBoost(ctx, view.ID)
		require.NoError(t, err)
		got := accepted.Load()
		require.LessOrEqual(t, got, int64(maxClicks))
		assert.Equal(t, got, b.Stats.TotalClicks)
		assert.True(t, b.Stats.TotalSpent.Equal(decimal.RequireFromString("0.50").Mul(decimal.NewFromInt(got))))
		if got == maxClicks {
			assert.Equal(t, domain.StatusCompleted, b.Status, "round %d", round)
		} else {
			assert.Equal(t, domain.StatusExpired, b.Status, "round %d", round)
		}

		clicks, err := svc.ListClicks(ctx, view.ID, 1, 100)
		require.NoError(t, err)
		assert.Len(t, clicks, int(got))

		item, _ := store.Item(view.Target)
		assert.False(t, item.IsBoosted)
	}
}
