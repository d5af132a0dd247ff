package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
	"boost-engine/internal/core/ranking"
	"boost-engine/internal/metrics"
)

// ListingUseCase implements port.ListingUseCase on top of the catalog
// collaborator. It never writes and never caches: every call reshuffles the
// non-boosted items.
type ListingUseCase struct {
	catalog     port.CatalogRepository
	sweeper     port.SweepTrigger
	logger      *slog.Logger
	maxPageSize int
}

// NewListingUseCase creates the listing use case. sweeper may be nil.
func NewListingUseCase(catalog port.CatalogRepository, sweeper port.SweepTrigger, logger *slog.Logger, maxPageSize int) *ListingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &ListingUseCase{catalog: catalog, sweeper: sweeper, logger: logger, maxPageSize: maxPageSize}
}

// List returns one page of the ranked feed for q. Boosted flags on the pool
// may be stale by up to one sweep interval; when the pool holds boosted
// items a sweep is requested without waiting for it.
func (u *ListingUseCase) List(ctx context.Context, q domain.CatalogQuery, page, pageSize int) (*ranking.Page, error) {
	start := time.Now()
	defer func() {
		metrics.RecordListing(string(q.Type), time.Since(start).Seconds())
	}()

	if pageSize <= 0 || pageSize > u.maxPageSize {
		return nil, fmt.Errorf("%w: page size must be between 1 and %d", domain.ErrInvalidArgument, u.maxPageSize)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", domain.ErrInvalidArgument)
	}

	pool, err := u.catalog.ListEligible(ctx, q)
	if err != nil {
		return nil, err
	}

	if u.sweeper != nil {
		for i := range pool {
			if pool[i].IsBoosted {
				u.sweeper.Nudge()
				break
			}
		}
	}

	p, err := ranking.Compose(pool, page, pageSize, q.Sort)
	if err != nil {
		return nil, err
	}
	u.logger.Debug("listing composed",
		slog.String("target_type", string(q.Type)),
		slog.Int("pool", len(pool)),
		slog.Int("page", page),
		slog.Int("returned", len(p.Items)),
	)
	return &p, nil
}
