package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
	"boost-engine/internal/metrics"
)

// Options tunes BoostUseCase. Zero values are replaced by defaults.
type Options struct {
	// BudgetTolerance is how far totalBudget may exceed
	// maxClicks*costPerClick at admission.
	BudgetTolerance decimal.Decimal
	// ClickMaxAttempts bounds optimistic retries of a single click or
	// manual transition before ErrConcurrencyExhausted is returned.
	ClickMaxAttempts int
	// MaxPageSize caps page_size on list operations.
	MaxPageSize int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

const (
	defaultClickMaxAttempts = 16
	defaultMaxPageSize      = 100
)

// BoostUseCase implements port.BoostUseCase. It owns boost admission, click
// metering and the manual and scheduled lifecycle transitions. All writes go
// through BoostRepository.Update as version-checked commits.
type BoostUseCase struct {
	repo      port.BoostRepository
	publisher port.EventPublisher
	logger    *slog.Logger

	tolerance   decimal.Decimal
	maxAttempts int
	maxPageSize int
	now         func() time.Time
}

// NewBoostUseCase creates the use case. publisher may be nil, in which case
// lifecycle events are not published. It must not block on network I/O.
func NewBoostUseCase(repo port.BoostRepository, publisher port.EventPublisher, logger *slog.Logger, opts Options) *BoostUseCase {
	u := &BoostUseCase{
		repo:        repo,
		publisher:   publisher,
		logger:      logger,
		tolerance:   opts.BudgetTolerance,
		maxAttempts: opts.ClickMaxAttempts,
		maxPageSize: opts.MaxPageSize,
		now:         opts.Clock,
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if u.maxAttempts <= 0 {
		u.maxAttempts = defaultClickMaxAttempts
	}
	if u.maxPageSize <= 0 {
		u.maxPageSize = defaultMaxPageSize
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

// CreateBoost admits a settled payment as an active boost. The store rejects
// a second active boost for the same target.
func (u *BoostUseCase) CreateBoost(ctx context.Context, a domain.Admission) (*port.BoostView, error) {
	now := u.now()
	b, err := domain.NewBoost(a, u.tolerance, now)
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	metrics.RecordTransition(string(domain.StatusActive), 1)
	u.logger.Info("boost created",
		slog.String("boost_id", b.ID),
		slog.String("target", b.Target.String()),
		slog.String("owner_id", b.OwnerID),
		slog.Int64("max_clicks", b.Config.MaxClicks),
	)
	u.publish(ctx, domain.EventBoostCreated, b, b.OwnerID)
	return port.NewBoostView(b, now), nil
}

// GetBoost returns a boost by id.
func (u *BoostUseCase) GetBoost(ctx context.Context, id string) (*port.BoostView, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return port.NewBoostView(b, u.now()), nil
}

// ListOwnerBoosts returns a page of an owner's boosts, newest first.
func (u *BoostUseCase) ListOwnerBoosts(ctx context.Context, ownerID string, status *domain.BoostStatus, page, pageSize int) ([]port.BoostView, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}
	limit, offset, err := u.paging(page, pageSize)
	if err != nil {
		return nil, err
	}
	boosts, err := u.repo.ListByOwner(ctx, ownerID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	now := u.now()
	views := make([]port.BoostView, 0, len(boosts))
	for i := range boosts {
		views = append(views, *port.NewBoostView(&boosts[i], now))
	}
	return views, nil
}

// ListClicks returns a page of a boost's click history.
func (u *BoostUseCase) ListClicks(ctx context.Context, boostID string, page, pageSize int) ([]domain.ClickRecord, error) {
	limit, offset, err := u.paging(page, pageSize)
	if err != nil {
		return nil, err
	}
	if _, err = u.repo.GetByID(ctx, boostID); err != nil {
		return nil, err
	}
	return u.repo.ListClicks(ctx, boostID, limit, offset)
}

func (u *BoostUseCase) paging(page, pageSize int) (limit, offset int, err error) {
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be at least 1", domain.ErrInvalidArgument)
	}
	if pageSize <= 0 || pageSize > u.maxPageSize {
		return 0, 0, fmt.Errorf("%w: page size must be between 1 and %d", domain.ErrInvalidArgument, u.maxPageSize)
	}
	if page > math.MaxInt/pageSize {
		return 0, 0, fmt.Errorf("%w: page %d is out of range", domain.ErrInvalidArgument, page)
	}
	return pageSize, (page - 1) * pageSize, nil
}

// publish hands a lifecycle event to the publisher after commit. The
// publisher only queues it (see kafka.Dispatcher), so the caller never waits
// on the broker. Failures are logged and never undo the committed change.
func (u *BoostUseCase) publish(ctx context.Context, t domain.BoostEventType, b *domain.Boost, actorID string) {
	if u.publisher == nil {
		return
	}
	ev := domain.NewBoostEvent(t, b, actorID, u.now())
	if err := u.publisher.Publish(context.WithoutCancel(ctx), ev); err != nil {
		u.logger.Warn("publish boost event failed",
			slog.String("event", string(t)),
			slog.String("boost_id", b.ID),
			slog.Any("error", err),
		)
	}
}
