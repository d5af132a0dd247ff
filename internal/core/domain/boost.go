package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money amounts may carry.
// It matches the numeric(12,2) columns of the boosts table.
const MoneyScale = 2

// BoostStatus is the lifecycle state of a boost.
type BoostStatus string

const (
	StatusActive    BoostStatus = "active"
	StatusPaused    BoostStatus = "paused"
	StatusCompleted BoostStatus = "completed"
	StatusExpired   BoostStatus = "expired"
	StatusCancelled BoostStatus = "cancelled"
)

// Terminal reports whether no further transition or click is possible.
func (s BoostStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseBoostStatus validates a raw status value.
func ParseBoostStatus(s string) (BoostStatus, error) {
	switch st := BoostStatus(s); st {
	case StatusActive, StatusPaused, StatusCompleted, StatusExpired, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, s)
	}
}

// BoostConfig is the purchased allowance of a boost.
type BoostConfig struct {
	MaxClicks    int64           `json:"maxClicks"`
	CostPerClick decimal.Decimal `json:"costPerClick"`
	TotalBudget  decimal.Decimal `json:"totalBudget"`
}

// Validate checks the numeric constraints of the config. The budget must
// cover every click in the quota, and may exceed maxClicks*costPerClick by at
// most tolerance.
func (c BoostConfig) Validate(tolerance decimal.Decimal) error {
	if c.MaxClicks < 1 {
		return fmt.Errorf("%w: maxClicks must be at least 1", ErrInvalidConfig)
	}
	if c.CostPerClick.IsNegative() {
		return fmt.Errorf("%w: costPerClick must not be negative", ErrInvalidConfig)
	}
	if c.TotalBudget.IsNegative() {
		return fmt.Errorf("%w: totalBudget must not be negative", ErrInvalidConfig)
	}
	if c.CostPerClick.Exponent() < -MoneyScale || c.TotalBudget.Exponent() < -MoneyScale {
		return fmt.Errorf("%w: amounts support at most %d decimal places", ErrInvalidConfig, MoneyScale)
	}
	required := c.CostPerClick.Mul(decimal.NewFromInt(c.MaxClicks))
	if c.TotalBudget.LessThan(required) {
		return fmt.Errorf("%w: totalBudget %s does not cover %d clicks at %s",
			ErrInvalidConfig, c.TotalBudget, c.MaxClicks, c.CostPerClick)
	}
	if c.TotalBudget.Sub(required).GreaterThan(tolerance) {
		return fmt.Errorf("%w: totalBudget %s exceeds %s by more than %s",
			ErrInvalidConfig, c.TotalBudget, required, tolerance)
	}
	return nil
}

// BoostStats are the live counters of a boost. TotalSpent is always
// TotalClicks*CostPerClick and RemainingBudget is TotalBudget-TotalSpent.
type BoostStats struct {
	TotalClicks     int64           `json:"totalClicks"`
	RemainingClicks int64           `json:"remainingClicks"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	LastClickAt     *time.Time      `json:"lastClickAt,omitempty"`
}

// ClickMeta describes where a click came from. It is recorded for audit only.
type ClickMeta struct {
	Source    string
	UserAgent string
	IPAddress string
}

// ClickRecord is one entry of a boost's append-only click history.
type ClickRecord struct {
	ID        int64           `json:"id,omitempty"`
	BoostID   string          `json:"boostId"`
	Timestamp time.Time       `json:"timestamp"`
	Cost      decimal.Decimal `json:"cost"`
	Source    string          `json:"source"`
	UserAgent string          `json:"userAgent"`
	IPAddress string          `json:"ipAddress"`
}

// Boost is a paid grant of elevated listing visibility for one target.
// Version increases on every committed mutation and is the optimistic
// concurrency token used by the store.
type Boost struct {
	ID              string      `json:"id"`
	Target          Target      `json:"target"`
	OwnerID         string      `json:"ownerId"`
	PaymentID       string      `json:"paymentId"`
	Status          BoostStatus `json:"status"`
	Config          BoostConfig `json:"config"`
	Stats           BoostStats  `json:"stats"`
	Priority        int         `json:"priority"`
	StartDate       time.Time   `json:"startDate"`
	EndDate         *time.Time  `json:"endDate,omitempty"`
	Version         int64       `json:"version"`
	StatusChangedBy string      `json:"statusChangedBy,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	ClosedAt        *time.Time  `json:"closedAt,omitempty"`
}

// Admission is the settled purchase handed over by the payment collaborator.
type Admission struct {
	Target    Target
	OwnerID   string
	PaymentID string
	Config    BoostConfig
	Priority  int
	EndDate   *time.Time
}

// NewBoost validates an admission and builds an active boost with a full
// quota and budget.
func NewBoost(a Admission, tolerance decimal.Decimal, now time.Time) (*Boost, error) {
	if _, err := ParseTargetType(string(a.Target.Type)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Target.ID) == "" {
		return nil, fmt.Errorf("%w: targetId is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(a.OwnerID) == "" {
		return nil, fmt.Errorf("%w: ownerId is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(a.PaymentID) == "" {
		return nil, fmt.Errorf("%w: paymentId is required", ErrInvalidArgument)
	}
	if err := a.Config.Validate(tolerance); err != nil {
		return nil, err
	}
	if a.Priority < 0 {
		return nil, fmt.Errorf("%w: priority must not be negative", ErrInvalidConfig)
	}
	now = now.UTC()
	var end *time.Time
	if a.EndDate != nil {
		if !a.EndDate.After(now) {
			return nil, fmt.Errorf("%w: endDate must be in the future", ErrInvalidConfig)
		}
		e := a.EndDate.UTC()
		end = &e
	}
	return &Boost{
		ID:        uuid.NewString(),
		Target:    Target{Type: a.Target.Type, ID: strings.TrimSpace(a.Target.ID)},
		OwnerID:   strings.TrimSpace(a.OwnerID),
		PaymentID: strings.TrimSpace(a.PaymentID),
		Status:    StatusActive,
		Config:    a.Config,
		Stats: BoostStats{
			RemainingClicks: a.Config.MaxClicks,
			TotalSpent:      decimal.Zero,
			RemainingBudget: a.Config.TotalBudget,
		},
		Priority:  a.Priority,
		StartDate: now,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsEffectivelyActive reports whether the boost should be treated as active
// right now, regardless of when the stored status was last reconciled: the
// status is active, clicks and budget remain, and the end date has not passed.
func (b *Boost) IsEffectivelyActive(now time.Time) bool {
	if b.Status != StatusActive || b.Stats.RemainingClicks <= 0 {
		return false
	}
	// A free boost (zero cost per click) may be admitted with a zero budget
	// and ApplyClick never spends it, so only quota and end date bound it.
	if !b.Stats.RemainingBudget.IsPositive() && !b.Config.CostPerClick.IsZero() {
		return false
	}
	return b.EndDate == nil || b.EndDate.After(now)
}

// DueForExpiry reports whether an active boost has passed its end date.
func (b *Boost) DueForExpiry(now time.Time) bool {
	return b.Status == StatusActive && b.EndDate != nil && b.EndDate.Before(now)
}

// ApplyClick charges one click against the boost. It returns false without
// touching the boost when the click cannot be accepted. When the quota
// reaches zero the boost is completed.
func (b *Boost) ApplyClick(meta ClickMeta, now time.Time) (ClickRecord, bool) {
	if b.Status != StatusActive || b.Stats.RemainingClicks <= 0 {
		return ClickRecord{}, false
	}
	if b.EndDate != nil && !b.EndDate.After(now) {
		return ClickRecord{}, false
	}
	cost := b.Config.CostPerClick
	if b.Stats.RemainingBudget.Sub(cost).IsNegative() {
		return ClickRecord{}, false
	}

	now = now.UTC()
	clicks := b.Stats.TotalClicks + 1
	spent := cost.Mul(decimal.NewFromInt(clicks))
	b.Stats.TotalClicks = clicks
	b.Stats.RemainingClicks = b.Config.MaxClicks - clicks
	b.Stats.TotalSpent = spent
	b.Stats.RemainingBudget = b.Config.TotalBudget.Sub(spent)
	b.Stats.LastClickAt = &now
	b.UpdatedAt = now

	if b.Stats.RemainingClicks <= 0 {
		b.close(StatusCompleted, "", now)
	}

	return ClickRecord{
		BoostID:   b.ID,
		Timestamp: now,
		Cost:      cost,
		Source:    meta.Source,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
	}, true
}

// Expire moves an active boost past its end date to expired.
func (b *Boost) Expire(now time.Time) bool {
	if !b.DueForExpiry(now) {
		return false
	}
	b.close(StatusExpired, "", now.UTC())
	return true
}

// Pause suspends an active boost.
func (b *Boost) Pause(operatorID string, now time.Time) error {
	if b.Status != StatusActive {
		return fmt.Errorf("%w: cannot pause a %s boost", ErrInvalidTransition, b.Status)
	}
	now = now.UTC()
	b.Status = StatusPaused
	b.StatusChangedBy = operatorID
	b.UpdatedAt = now
	return nil
}

// Resume reactivates a paused boost that still has quota, budget and time.
func (b *Boost) Resume(operatorID string, now time.Time) error {
	if b.Status != StatusPaused {
		return fmt.Errorf("%w: cannot resume a %s boost", ErrInvalidTransition, b.Status)
	}
	if b.Stats.RemainingClicks <= 0 {
		return fmt.Errorf("%w: no clicks remaining", ErrInvalidTransition)
	}
	if b.Stats.RemainingBudget.LessThan(b.Config.CostPerClick) {
		return fmt.Errorf("%w: no budget remaining", ErrInvalidTransition)
	}
	if b.EndDate != nil && !b.EndDate.After(now) {
		return fmt.Errorf("%w: end date has passed", ErrInvalidTransition)
	}
	now = now.UTC()
	b.Status = StatusActive
	b.StatusChangedBy = operatorID
	b.UpdatedAt = now
	return nil
}

// Cancel terminates an active or paused boost.
func (b *Boost) Cancel(operatorID string, now time.Time) error {
	if b.Status != StatusActive && b.Status != StatusPaused {
		return fmt.Errorf("%w: cannot cancel a %s boost", ErrInvalidTransition, b.Status)
	}
	b.close(StatusCancelled, operatorID, now.UTC())
	return nil
}

// TargetFlags returns the denormalized values this boost contributes to its
// target: only an active boost marks the target as boosted.
func (b *Boost) TargetFlags() (isBoosted bool, priority int) {
	if b.Status != StatusActive {
		return false, 0
	}
	return true, b.Priority
}

func (b *Boost) close(status BoostStatus, operatorID string, now time.Time) {
	b.Status = status
	if operatorID != "" {
		b.StatusChangedBy = operatorID
	}
	b.UpdatedAt = now
	b.ClosedAt = &now
}
