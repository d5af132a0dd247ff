package domain

import "time"

// BoostEventType names a lifecycle change published for other services.
type BoostEventType string

const (
	EventBoostCreated   BoostEventType = "boost.created"
	EventBoostCompleted BoostEventType = "boost.completed"
	EventBoostExpired   BoostEventType = "boost.expired"
	EventBoostPaused    BoostEventType = "boost.paused"
	EventBoostResumed   BoostEventType = "boost.resumed"
	EventBoostCancelled BoostEventType = "boost.cancelled"
)

// BoostEvent is a committed lifecycle change of a boost.
type BoostEvent struct {
	Type       BoostEventType `json:"type"`
	BoostID    string         `json:"boostId"`
	Target     Target         `json:"target"`
	OwnerID    string         `json:"ownerId"`
	Status     BoostStatus    `json:"status"`
	Stats      BoostStats     `json:"stats"`
	ActorID    string         `json:"actorId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewBoostEvent snapshots b for publishing.
func NewBoostEvent(t BoostEventType, b *Boost, actorID string, now time.Time) BoostEvent {
	return BoostEvent{
		Type:       t,
		BoostID:    b.ID,
		Target:     b.Target,
		OwnerID:    b.OwnerID,
		Status:     b.Status,
		Stats:      b.Stats,
		ActorID:    actorID,
		OccurredAt: now.UTC(),
	}
}
