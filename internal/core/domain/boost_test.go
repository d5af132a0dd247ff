package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tolerance = decimal.RequireFromString("0.01")

func newTestBoost(t *testing.T, maxClicks int64, cost, budget string) *Boost {
	t.Helper()
	b, err := NewBoost(Admission{
		Target:    Target{Type: TargetProduct, ID: "p1"},
		OwnerID:   "seller-1",
		PaymentID: "pay-1",
		Config: BoostConfig{
			MaxClicks:    maxClicks,
			CostPerClick: decimal.RequireFromString(cost),
			TotalBudget:  decimal.RequireFromString(budget),
		},
		Priority: 5,
	}, tolerance, time.Now())
	require.NoError(t, err)
	return b
}

func TestBoostConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     BoostConfig
		wantErr bool
	}{
		{"exact budget", BoostConfig{3, decimal.NewFromInt(5), decimal.NewFromInt(15)}, false},
		{"free boost", BoostConfig{10, decimal.Zero, decimal.Zero}, false},
		{"within tolerance", BoostConfig{3, decimal.NewFromInt(5), decimal.RequireFromString("15.01")}, false},
		{"zero clicks", BoostConfig{0, decimal.NewFromInt(5), decimal.Zero}, true},
		{"negative cost", BoostConfig{1, decimal.NewFromInt(-1), decimal.Zero}, true},
		{"negative budget", BoostConfig{1, decimal.Zero, decimal.NewFromInt(-1)}, true},
		{"underfunded", BoostConfig{3, decimal.NewFromInt(5), decimal.NewFromInt(14)}, true},
		{"overfunded", BoostConfig{3, decimal.NewFromInt(5), decimal.NewFromInt(16)}, true},
		{"sub-cent cost", BoostConfig{1, decimal.RequireFromString("0.001"), decimal.RequireFromString("0.001")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate(tolerance)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBoostRejectsBadAdmission(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	base := Admission{
		Target:    Target{Type: TargetEvent, ID: "e1"},
		OwnerID:   "o1",
		PaymentID: "pay",
		Config:    BoostConfig{1, decimal.NewFromInt(1), decimal.NewFromInt(1)},
	}

	a := base
	a.Target.Type = "shop"
	_, err := NewBoost(a, tolerance, now)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	a = base
	a.PaymentID = " "
	_, err = NewBoost(a, tolerance, now)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	a = base
	a.EndDate = &past
	_, err = NewBoost(a, tolerance, now)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	a = base
	a.Priority = -1
	_, err = NewBoost(a, tolerance, now)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewBoostStartsWithFullAllowance(t *testing.T) {
	b := newTestBoost(t, 3, "5", "15")
	assert.Equal(t, StatusActive, b.Status)
	assert.EqualValues(t, 3, b.Stats.RemainingClicks)
	assert.True(t, b.Stats.RemainingBudget.Equal(decimal.NewFromInt(15)))
	assert.True(t, b.Stats.TotalSpent.IsZero())
	assert.NotEmpty(t, b.ID)

	boosted, prio := b.TargetFlags()
	assert.True(t, boosted)
	assert.Equal(t, 5, prio)
}

func TestApplyClickExhaustsQuota(t *testing.T) {
	b := newTestBoost(t, 3, "5", "15")
	now := time.Now()

	for i := 1; i <= 3; i++ {
		rec, ok := b.ApplyClick(ClickMeta{Source: "home", UserAgent: "ua", IPAddress: "10.0.0.1"}, now)
		require.True(t, ok, "click %d", i)
		assert.True(t, rec.Cost.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, "home", rec.Source)
		assert.True(t, b.Stats.TotalSpent.Equal(b.Config.CostPerClick.Mul(decimal.NewFromInt(b.Stats.TotalClicks))))
	}

	assert.Equal(t, StatusCompleted, b.Status)
	assert.EqualValues(t, 0, b.Stats.RemainingClicks)
	assert.True(t, b.Stats.RemainingBudget.IsZero())
	assert.NotNil(t, b.ClosedAt)

	before := b.Stats
	_, ok := b.ApplyClick(ClickMeta{}, now)
	assert.False(t, ok)
	assert.Equal(t, before, b.Stats)

	boosted, _ := b.TargetFlags()
	assert.False(t, boosted)
}

func TestApplyClickKeepsSpendExact(t *testing.T) {
	b := newTestBoost(t, 1000, "0.10", "100")
	for i := 0; i < 1000; i++ {
		_, ok := b.ApplyClick(ClickMeta{}, time.Now())
		require.True(t, ok)
	}
	assert.Equal(t, "100", b.Stats.TotalSpent.String())
	assert.True(t, b.Stats.RemainingBudget.IsZero())
}

func TestApplyClickRejectsPastEndDate(t *testing.T) {
	b := newTestBoost(t, 3, "1", "3")
	end := time.Now().Add(-time.Minute)
	b.EndDate = &end

	_, ok := b.ApplyClick(ClickMeta{}, time.Now())
	assert.False(t, ok)
	assert.EqualValues(t, 0, b.Stats.TotalClicks)
	assert.True(t, b.DueForExpiry(time.Now()))
	assert.True(t, b.Expire(time.Now()))
	assert.Equal(t, StatusExpired, b.Status)
	assert.False(t, b.Expire(time.Now()))
}

func TestIsEffectivelyActive(t *testing.T) {
	now := time.Now()
	b := newTestBoost(t, 2, "1", "2")
	assert.True(t, b.IsEffectivelyActive(now))

	future := now.Add(time.Hour)
	b.EndDate = &future
	assert.True(t, b.IsEffectivelyActive(now))
	assert.False(t, b.IsEffectivelyActive(future.Add(time.Second)))

	b.Status = StatusPaused
	assert.False(t, b.IsEffectivelyActive(now))

	spent := newTestBoost(t, 2, "1", "2")
	spent.Stats.RemainingBudget = decimal.Zero
	assert.False(t, spent.IsEffectivelyActive(now))

	free := newTestBoost(t, 2, "0", "0")
	assert.True(t, free.IsEffectivelyActive(now))
	_, ok := free.ApplyClick(ClickMeta{}, now)
	require.True(t, ok)
	assert.True(t, free.IsEffectivelyActive(now))
	_, ok = free.ApplyClick(ClickMeta{}, now)
	require.True(t, ok)
	assert.False(t, free.IsEffectivelyActive(now))
	assert.Equal(t, StatusCompleted, free.Status)
}

func TestManualTransitions(t *testing.T) {
	now := time.Now()
	b := newTestBoost(t, 2, "1", "2")

	require.NoError(t, b.Pause("op", now))
	assert.Equal(t, StatusPaused, b.Status)
	assert.ErrorIs(t, b.Pause("op", now), ErrInvalidTransition)

	_, ok := b.ApplyClick(ClickMeta{}, now)
	assert.False(t, ok, "paused boost must not accept clicks")

	require.NoError(t, b.Resume("op", now))
	assert.Equal(t, StatusActive, b.Status)
	assert.ErrorIs(t, b.Resume("op", now), ErrInvalidTransition)

	require.NoError(t, b.Cancel("op-2", now))
	assert.Equal(t, StatusCancelled, b.Status)
	assert.Equal(t, "op-2", b.StatusChangedBy)
	assert.ErrorIs(t, b.Resume("op", now), ErrInvalidTransition)
	assert.ErrorIs(t, b.Cancel("op", now), ErrInvalidTransition)
}

func TestResumeRequiresFutureEndDate(t *testing.T) {
	now := time.Now()
	b := newTestBoost(t, 2, "1", "2")
	require.NoError(t, b.Pause("op", now))
	past := now.Add(-time.Second)
	b.EndDate = &past
	assert.ErrorIs(t, b.Resume("op", now), ErrInvalidTransition)
}

func TestParseSortSpec(t *testing.T) {
	ss, err := ParseSortSpec("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSort, ss)

	ss, err = ParseSortSpec("price", "")
	require.NoError(t, err)
	assert.Equal(t, SortSpec{Field: SortPrice}, ss)

	ss, err = ParseSortSpec("title", "DESC")
	require.NoError(t, err)
	assert.Equal(t, SortSpec{Field: SortTitle, Desc: true}, ss)

	_, err = ParseSortSpec("rating", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseSortSpec("price", "up")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
