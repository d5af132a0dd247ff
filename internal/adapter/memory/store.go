package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

// Store keeps boosts, their click history and the catalog read model in
// process memory. It implements port.BoostRepository and
// port.CatalogRepository with the same guarantees as the Postgres adapter:
// version-checked updates, at most one active boost per target and target
// flags refreshed under the same lock as the status change.
type Store struct {
	mu sync.RWMutex

	boosts   map[string]domain.Boost
	active   map[domain.Target]string // target -> active boost id
	payments map[string]string        // payment id -> boost id
	clicks   map[string][]domain.ClickRecord
	clickSeq int64

	items map[domain.Target]catalogEntry
}

type catalogEntry struct {
	item     domain.Item
	active   bool
	approved bool
}

var (
	_ port.BoostRepository   = (*Store)(nil)
	_ port.CatalogRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		boosts:   make(map[string]domain.Boost),
		active:   make(map[domain.Target]string),
		payments: make(map[string]string),
		clicks:   make(map[string][]domain.ClickRecord),
		items:    make(map[domain.Target]catalogEntry),
	}
}

// PutItem adds or replaces a catalog item. Its boost flags are recomputed
// from the stored boosts.
func (s *Store) PutItem(item domain.Item, active, approved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.Target{Type: item.Type, ID: item.ID}
	s.items[key] = catalogEntry{item: item, active: active, approved: approved}
	s.refreshFlags(key)
}

// Item returns a catalog item with its current flags.
func (s *Store) Item(target domain.Target) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[target]
	return e.item, ok
}

func (s *Store) Create(ctx context.Context, b *domain.Boost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[b.PaymentID]; ok {
		return domain.ErrPaymentAlreadyUsed
	}
	if _, ok := s.boosts[b.ID]; ok {
		return fmt.Errorf("boost %s already exists", b.ID)
	}
	if b.Status == domain.StatusActive {
		if _, ok := s.active[b.Target]; ok {
			return domain.ErrDuplicateActiveBoost
		}
		s.active[b.Target] = b.ID
	}

	s.boosts[b.ID] = *b
	s.payments[b.PaymentID] = b.ID
	s.refreshFlags(b.Target)
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Boost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boosts[id]
	if !ok {
		return nil, domain.ErrBoostNotFound
	}
	return &b, nil
}

func (s *Store) GetActiveByTarget(ctx context.Context, target domain.Target) (*domain.Boost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.active[target]
	if !ok {
		return nil, domain.ErrBoostNotFound
	}
	b := s.boosts[id]
	return &b, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string, status *domain.BoostStatus, limit, offset int) ([]domain.Boost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Boost
	for _, b := range s.boosts {
		if b.OwnerID != ownerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b domain.Boost) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return window(out, limit, offset), nil
}

func (s *Store) ListClicks(ctx context.Context, boostID string, limit, offset int) ([]domain.ClickRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(window(s.clicks[boostID], limit, offset)), nil
}

func (s *Store) Update(ctx context.Context, b *domain.Boost, expectedVersion int64, click *domain.ClickRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.boosts[b.ID]
	if !ok {
		return domain.ErrBoostNotFound
	}
	if cur.Version != expectedVersion {
		return port.ErrVersionConflict
	}

	if b.Status == domain.StatusActive && cur.Status != domain.StatusActive {
		if other, taken := s.active[b.Target]; taken && other != b.ID {
			return domain.ErrDuplicateActiveBoost
		}
	}

	b.Version = expectedVersion + 1
	s.boosts[b.ID] = *b
	if b.Status == domain.StatusActive {
		s.active[b.Target] = b.ID
	} else if s.active[b.Target] == b.ID {
		delete(s.active, b.Target)
	}

	if click != nil {
		s.clickSeq++
		rec := *click
		rec.ID = s.clickSeq
		rec.BoostID = b.ID
		s.clicks[b.ID] = append(s.clicks[b.ID], rec)
	}

	if cur.Status != b.Status || cur.Priority != b.Priority {
		s.refreshFlags(b.Target)
	}
	return nil
}

func (s *Store) ExpireDue(ctx context.Context, now time.Time) ([]domain.Boost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []domain.Boost
	for _, id := range s.active {
		b := s.boosts[id]
		if !b.Expire(now) {
			continue
		}
		b.Version++
		s.boosts[id] = b
		expired = append(expired, b)
	}
	for _, b := range expired {
		delete(s.active, b.Target)
		s.refreshFlags(b.Target)
	}
	slices.SortFunc(expired, func(a, b domain.Boost) int { return strings.Compare(a.ID, b.ID) })
	return expired, nil
}

// ListEligible returns every active, approved item of q.Type matching the
// search, category and shop filters. The order is unspecified.
func (s *Store) ListEligible(ctx context.Context, q domain.CatalogQuery) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Item, 0, len(s.items))
	for key, e := range s.items {
		if key.Type != q.Type || !e.active || !e.approved {
			continue
		}
		if q.Category != "" && !strings.EqualFold(e.item.Category, q.Category) {
			continue
		}
		if q.ShopID != "" && e.item.ShopID != q.ShopID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.item.Title), search) {
			continue
		}
		out = append(out, e.item)
	}
	return out, nil
}

// refreshFlags recomputes a target's boost flags from the active boost
// index. Callers hold the write lock.
func (s *Store) refreshFlags(target domain.Target) {
	e, ok := s.items[target]
	if !ok {
		return
	}
	e.item.IsBoosted, e.item.BoostPriority = false, 0
	if id, ok := s.active[target]; ok {
		b := s.boosts[id]
		e.item.IsBoosted, e.item.BoostPriority = b.TargetFlags()
	}
	s.items[target] = e
}

func window[T any](all []T, limit, offset int) []T {
	offset = max(offset, 0)
	if offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 {
		end = min(offset+limit, len(all))
	}
	return all[offset:end]
}
