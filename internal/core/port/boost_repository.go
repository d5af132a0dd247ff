package port

import (
	"context"
	"errors"
	"time"

	"boost-engine/internal/core/domain"
)

// ErrVersionConflict is returned by BoostRepository.Update when the stored
// version no longer matches the version the caller read.
var ErrVersionConflict = errors.New("boost version conflict")

// BoostRepository is the durable store of boosts. It is an outbound port.
// Implementations must be concurrency-safe, keep at most one active boost per
// target, and keep the target's denormalized boost flags in step with every
// status change inside the same unit of work.
type BoostRepository interface {
	// Create stores a new boost and marks its target as boosted. It returns
	// domain.ErrDuplicateActiveBoost when the target already has an active
	// boost and domain.ErrPaymentAlreadyUsed when the payment funded another
	// boost.
	Create(ctx context.Context, b *domain.Boost) error
	// GetByID returns domain.ErrBoostNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*domain.Boost, error)
	// GetActiveByTarget returns the active boost of a target or
	// domain.ErrBoostNotFound.
	GetActiveByTarget(ctx context.Context, target domain.Target) (*domain.Boost, error)
	// ListByOwner returns an owner's boosts, newest first. A nil status
	// lists every status.
	ListByOwner(ctx context.Context, ownerID string, status *domain.BoostStatus, limit, offset int) ([]domain.Boost, error)
	// ListClicks returns the click history of a boost, oldest first.
	ListClicks(ctx context.Context, boostID string, limit, offset int) ([]domain.ClickRecord, error)
	// Update commits b only if the stored version still equals
	// expectedVersion, appending click to the history when it is not nil.
	// On success b.Version is advanced. Returns ErrVersionConflict when the
	// record moved and domain.ErrDuplicateActiveBoost when activating b
	// would give its target two active boosts.
	Update(ctx context.Context, b *domain.Boost, expectedVersion int64, click *domain.ClickRecord) error
	// ExpireDue moves every active boost whose end date is before now to
	// expired, clears their targets' flags and returns them.
	ExpireDue(ctx context.Context, now time.Time) ([]domain.Boost, error)
}

// CatalogRepository reads the catalog collaborator's items.
type CatalogRepository interface {
	// ListEligible returns every active, approved item matching q.
	ListEligible(ctx context.Context, q domain.CatalogQuery) ([]domain.Item, error)
}

// EventPublisher delivers committed lifecycle events to other services. The
// use cases call it on the click and transition paths, so the implementation
// handed to them must not wait on the network.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BoostEvent) error
}

// Locker grants a cluster-wide lease on key. ok is false when another holder
// owns the lease. unlock releases the lease only if it is still held.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, ok bool, err error)
}

// SweepTrigger requests an expiry sweep without waiting for it.
type SweepTrigger interface {
	Nudge()
}
