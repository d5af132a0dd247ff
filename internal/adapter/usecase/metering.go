package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
	"boost-engine/internal/metrics"
)

// RecordClick charges one click against the boost addressed by ref.
//
// The read-modify-write is committed with a version check and retried on
// conflict up to the configured number of attempts, so concurrent clicks on
// the same boost can never both take its last remaining click. A click on an
// active boost whose end date has passed expires it on the spot and is not
// accepted.
func (u *BoostUseCase) RecordClick(ctx context.Context, ref port.ClickRef, meta domain.ClickMeta) (*port.ClickResult, error) {
	start := time.Now()
	result := "error"
	defer func() {
		metrics.RecordClick(result, time.Since(start).Seconds())
	}()

	meta.Source = normalizeSource(meta.Source)

	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b, err := u.resolveClick(ctx, ref)
		if errors.Is(err, domain.ErrBoostNotFound) && ref.BoostID == "" {
			// no active boost for the target: nothing to charge
			result = "rejected"
			return &port.ClickResult{}, nil
		}
		if err != nil {
			return nil, err
		}

		now := u.now()
		prev := b.Version
		if b.DueForExpiry(now) {
			u.expireLazily(ctx, b, prev, now)
			result = "rejected"
			return clickResult(b, false), nil
		}

		click, ok := b.ApplyClick(meta, now)
		if !ok {
			result = "rejected"
			return clickResult(b, false), nil
		}

		err = u.repo.Update(ctx, b, prev, &click)
		if errors.Is(err, port.ErrVersionConflict) {
			metrics.ClickConflicts.Inc()
			u.logger.Debug("click version conflict",
				slog.String("boost_id", b.ID),
				slog.Int("attempt", attempt+1),
			)
			if err = backoff(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		result = "accepted"
		if b.Status == domain.StatusCompleted {
			metrics.RecordTransition(string(domain.StatusCompleted), 1)
			u.logger.Info("boost completed",
				slog.String("boost_id", b.ID),
				slog.String("target", b.Target.String()),
				slog.Int64("total_clicks", b.Stats.TotalClicks),
				slog.String("total_spent", b.Stats.TotalSpent.String()),
			)
			u.publish(ctx, domain.EventBoostCompleted, b, "")
		}
		return clickResult(b, true), nil
	}

	return nil, fmt.Errorf("%w: click on %s after %d attempts", domain.ErrConcurrencyExhausted, refString(ref), u.maxAttempts)
}

func (u *BoostUseCase) resolveClick(ctx context.Context, ref port.ClickRef) (*domain.Boost, error) {
	switch {
	case ref.BoostID != "":
		return u.repo.GetByID(ctx, ref.BoostID)
	case ref.Target != nil:
		return u.repo.GetActiveByTarget(ctx, *ref.Target)
	default:
		return nil, fmt.Errorf("%w: boost id or target is required", domain.ErrInvalidArgument)
	}
}

// expireLazily commits the expiry of b. A conflict means another writer got
// there first, which is fine: the click is rejected either way.
func (u *BoostUseCase) expireLazily(ctx context.Context, b *domain.Boost, prev int64, now time.Time) {
	if !b.Expire(now) {
		return
	}
	err := u.repo.Update(ctx, b, prev, nil)
	switch {
	case err == nil:
		metrics.RecordTransition(string(domain.StatusExpired), 1)
		u.logger.Info("boost expired", slog.String("boost_id", b.ID), slog.String("trigger", "click"))
		u.publish(ctx, domain.EventBoostExpired, b, "")
	case errors.Is(err, port.ErrVersionConflict):
	default:
		u.logger.Warn("lazy expiry failed", slog.String("boost_id", b.ID), slog.Any("error", err))
	}
}

func clickResult(b *domain.Boost, accepted bool) *port.ClickResult {
	boosted, _ := b.TargetFlags()
	return &port.ClickResult{
		Accepted:        accepted,
		BoostID:         b.ID,
		Status:          b.Status,
		RemainingClicks: b.Stats.RemainingClicks,
		IsBoosted:       boosted,
	}
}

func normalizeSource(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	if len(s) > 32 {
		s = s[:32]
	}
	return s
}

func refString(ref port.ClickRef) string {
	if ref.BoostID != "" {
		return "boost " + ref.BoostID
	}
	if ref.Target != nil {
		return "target " + ref.Target.String()
	}
	return "empty ref"
}

// backoff sleeps a short randomized interval that grows with attempt.
func backoff(ctx context.Context, attempt int) error {
	d := time.Duration(rand.IntN(attempt+1)*50) * time.Microsecond
	if d == 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
