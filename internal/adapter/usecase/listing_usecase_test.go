package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/adapter/memory"
	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port/mocks"
)

type countingTrigger struct{ n atomic.Int64 }

func (c *countingTrigger) Nudge() { c.n.Add(1) }

func TestListPutsBoostedItemsFirst(t *testing.T) {
	clock := newTestClock()
	store := memory.NewStore()
	base := clock.Now()
	for i, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		store.PutItem(domain.Item{
			ID:        id,
			Type:      domain.TargetProduct,
			Title:     "Item " + id,
			Price:     decimal.NewFromInt(int64(10 * (i + 1))),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}, true, true)
	}

	boosts := NewBoostUseCase(store, nil, nil, Options{Clock: clock.Now})
	ctx := context.Background()
	low := admission("p1", "pay-1", 5, "1.00", "5.00")
	low.Priority = 1
	high := admission("p2", "pay-2", 5, "1.00", "5.00")
	high.Priority = 5
	_, err := boosts.CreateBoost(ctx, low)
	require.NoError(t, err)
	_, err = boosts.CreateBoost(ctx, high)
	require.NoError(t, err)

	trigger := &countingTrigger{}
	svc := NewListingUseCase(store, trigger, nil, 100)

	q := domain.CatalogQuery{Type: domain.TargetProduct, Sort: domain.DefaultSort}
	page, err := svc.List(ctx, q, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, "p2", page.Items[0].ID)
	assert.Equal(t, "p1", page.Items[1].ID)
	for _, it := range page.Items[2:] {
		assert.False(t, it.IsBoosted)
	}
	assert.Equal(t, int64(1), trigger.n.Load())

	second, err := svc.List(ctx, q, 2, 3)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, 5, second.TotalCount)
}

func TestListWithoutBoostsDoesNotNudge(t *testing.T) {
	store := memory.NewStore()
	store.PutItem(domain.Item{ID: "e1", Type: domain.TargetEvent, Title: "Gig"}, true, true)

	trigger := &countingTrigger{}
	svc := NewListingUseCase(store, trigger, nil, 100)

	page, err := svc.List(context.Background(), domain.CatalogQuery{Type: domain.TargetEvent, Sort: domain.DefaultSort}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Zero(t, trigger.n.Load())
}

func TestListRejectsBadPaging(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	svc := NewListingUseCase(catalog, nil, nil, 50)
	q := domain.CatalogQuery{Type: domain.TargetProduct}

	for _, tc := range []struct{ page, size int }{{1, 0}, {0, 10}, {1, 51}} {
		_, err := svc.List(context.Background(), q, tc.page, tc.size)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestListCatalogFailure(t *testing.T) {
	boom := errors.New("catalog unavailable")
	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().ListEligible(mock.Anything, mock.Anything).Return(nil, boom)

	svc := NewListingUseCase(catalog, nil, nil, 50)
	_, err := svc.List(context.Background(), domain.CatalogQuery{Type: domain.TargetProduct}, 1, 10)
	require.ErrorIs(t, err, boom)
}
