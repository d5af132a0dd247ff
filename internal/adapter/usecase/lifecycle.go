package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
	"boost-engine/internal/metrics"
)

// Pause suspends an active boost and clears its target's boost flags.
func (u *BoostUseCase) Pause(ctx context.Context, boostID, operatorID string) (*port.BoostView, error) {
	return u.transition(ctx, boostID, operatorID, domain.EventBoostPaused, func(b *domain.Boost, now time.Time) error {
		return b.Pause(operatorID, now)
	})
}

// Resume reactivates a paused boost and restores its target's boost flags.
func (u *BoostUseCase) Resume(ctx context.Context, boostID, operatorID string) (*port.BoostView, error) {
	return u.transition(ctx, boostID, operatorID, domain.EventBoostResumed, func(b *domain.Boost, now time.Time) error {
		return b.Resume(operatorID, now)
	})
}

// Cancel terminates an active or paused boost.
func (u *BoostUseCase) Cancel(ctx context.Context, boostID, operatorID string) (*port.BoostView, error) {
	return u.transition(ctx, boostID, operatorID, domain.EventBoostCancelled, func(b *domain.Boost, now time.Time) error {
		return b.Cancel(operatorID, now)
	})
}

func (u *BoostUseCase) transition(
	ctx context.Context,
	boostID, operatorID string,
	event domain.BoostEventType,
	apply func(*domain.Boost, time.Time) error,
) (*port.BoostView, error) {
	if strings.TrimSpace(operatorID) == "" {
		return nil, fmt.Errorf("%w: operator id is required", domain.ErrInvalidArgument)
	}

	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		b, err := u.repo.GetByID(ctx, boostID)
		if err != nil {
			return nil, err
		}
		now := u.now()
		prev := b.Version

		// an overdue boost is closed first; the operator sees it as expired
		if b.DueForExpiry(now) {
			u.expireLazily(ctx, b, prev, now)
			return nil, fmt.Errorf("%w: boost %s has expired", domain.ErrInvalidTransition, b.ID)
		}

		if err = apply(b, now); err != nil {
			return nil, err
		}

		err = u.repo.Update(ctx, b, prev, nil)
		if errors.Is(err, port.ErrVersionConflict) {
			if err = backoff(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		metrics.RecordTransition(string(b.Status), 1)
		u.logger.Info("boost status changed",
			slog.String("boost_id", b.ID),
			slog.String("status", string(b.Status)),
			slog.String("operator_id", operatorID),
		)
		u.publish(ctx, event, b, operatorID)
		return port.NewBoostView(b, now), nil
	}
	return nil, fmt.Errorf("%w: boost %s", domain.ErrConcurrencyExhausted, boostID)
}

// SweepExpired closes every active boost whose end date has passed. The store
// applies the transition only to boosts that are still active, so a boost
// completed by a concurrent click keeps its terminal status.
func (u *BoostUseCase) SweepExpired(ctx context.Context) (int, error) {
	now := u.now()
	expired, err := u.repo.ExpireDue(ctx, now)
	if err != nil {
		metrics.SweepRuns.WithLabelValues("error").Inc()
		return 0, err
	}
	metrics.SweepRuns.WithLabelValues("ok").Inc()
	if len(expired) == 0 {
		return 0, nil
	}

	metrics.RecordTransition(string(domain.StatusExpired), len(expired))
	for i := range expired {
		b := &expired[i]
		u.logger.Info("boost expired", slog.String("boost_id", b.ID), slog.String("trigger", "sweep"))
		u.publish(ctx, domain.EventBoostExpired, b, "")
	}
	return len(expired), nil
}
