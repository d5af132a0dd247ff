package port

import (
	"context"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/ranking"
)

// BoostUseCase defines the boost operations exposed by the engine. It is the
// primary port used by the HTTP adapter and the sweeper.
type BoostUseCase interface {
	// CreateBoost admits a settled purchase as a new active boost.
	CreateBoost(ctx context.Context, a domain.Admission) (*BoostView, error)
	GetBoost(ctx context.Context, id string) (*BoostView, error)
	ListOwnerBoosts(ctx context.Context, ownerID string, status *domain.BoostStatus, page, pageSize int) ([]BoostView, error)
	ListClicks(ctx context.Context, boostID string, page, pageSize int) ([]domain.ClickRecord, error)

	// RecordClick charges one click against a boost. An inactive or
	// exhausted boost is not an error: the result carries Accepted=false.
	// A timed-out call may still have committed; callers must not retry it
	// blindly.
	RecordClick(ctx context.Context, ref ClickRef, meta domain.ClickMeta) (*ClickResult, error)

	Pause(ctx context.Context, boostID, operatorID string) (*BoostView, error)
	Resume(ctx context.Context, boostID, operatorID string) (*BoostView, error)
	Cancel(ctx context.Context, boostID, operatorID string) (*BoostView, error)

	// SweepExpired expires every active boost past its end date and returns
	// how many were closed.
	SweepExpired(ctx context.Context) (int, error)
}

// ListingUseCase builds the public ranked feed.
type ListingUseCase interface {
	List(ctx context.Context, q domain.CatalogQuery, page, pageSize int) (*ranking.Page, error)
}

// ClickRef addresses a click either by boost id or by target. Exactly one of
// BoostID and Target should be set.
type ClickRef struct {
	BoostID string
	Target  *domain.Target
}

// ClickResult is the outcome of RecordClick.
type ClickResult struct {
	Accepted        bool               `json:"accepted"`
	BoostID         string             `json:"boostId,omitempty"`
	Status          domain.BoostStatus `json:"status,omitempty"`
	RemainingClicks int64              `json:"remainingClicks"`
	IsBoosted       bool               `json:"isBoosted"`
}

// BoostView is a boost as shown to callers, with its effective activity
// computed at read time.
type BoostView struct {
	domain.Boost
	IsEffectivelyActive bool `json:"isEffectivelyActive"`
}

// NewBoostView wraps b for the given instant.
func NewBoostView(b *domain.Boost, now time.Time) *BoostView {
	return &BoostView{Boost: *b, IsEffectivelyActive: b.IsEffectivelyActive(now)}
}
