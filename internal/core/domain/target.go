package domain

import "fmt"

// TargetType identifies the kind of catalog entity a boost promotes.
type TargetType string

const (
	TargetProduct TargetType = "product"
	TargetEvent   TargetType = "event"
)

// ParseTargetType validates a raw target type coming from a request.
func ParseTargetType(s string) (TargetType, error) {
	switch TargetType(s) {
	case TargetProduct, TargetEvent:
		return TargetType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown target type %q", ErrInvalidArgument, s)
	}
}

// Target is a polymorphic reference to a product or an event.
type Target struct {
	Type TargetType `json:"targetType"`
	ID   string     `json:"targetId"`
}

func (t Target) String() string {
	return string(t.Type) + ":" + t.ID
}
