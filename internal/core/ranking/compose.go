// Package ranking merges boosted and non-boosted catalog items into one
// paginated feed.
//
// Boosted items come first, ordered by descending boost priority with ties
// broken by the catalog's own order. Non-boosted items follow in a fresh
// random order on every call so that no seller is favoured across visits.
// Results must not be cached between requests.
package ranking

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"boost-engine/internal/core/domain"
)

// Page is one slice of a composed listing.
type Page struct {
	Items      []domain.Item `json:"items"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
}

// Compose ranks pool and returns the requested page. page is 1-based. A page
// past the end of the listing is empty, not an error.
func Compose(pool []domain.Item, page, pageSize int, order domain.SortSpec) (Page, error) {
	if pageSize <= 0 {
		return Page{}, fmt.Errorf("%w: page size must be positive, got %d", domain.ErrInvalidArgument, pageSize)
	}
	if page < 1 {
		return Page{}, fmt.Errorf("%w: page must be at least 1, got %d", domain.ErrInvalidArgument, page)
	}
	if page > math.MaxInt/pageSize {
		return Page{}, fmt.Errorf("%w: page %d is out of range", domain.ErrInvalidArgument, page)
	}

	ranked := Rank(pool, order)

	out := Page{
		Items:      []domain.Item{},
		TotalCount: len(pool),
		Page:       page,
		PageSize:   pageSize,
	}
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return out, nil
	}
	end := min(start+pageSize, len(ranked))
	out.Items = ranked[start:end]
	return out, nil
}

// Rank returns a new slice holding the boosted items of pool sorted by
// priority followed by the remaining items shuffled. pool is not modified.
func Rank(pool []domain.Item, order domain.SortSpec) []domain.Item {
	boosted := make([]domain.Item, 0, len(pool))
	normal := make([]domain.Item, 0, len(pool))
	for _, it := range pool {
		if it.IsBoosted {
			boosted = append(boosted, it)
		} else {
			normal = append(normal, it)
		}
	}

	slices.SortStableFunc(boosted, func(a, b domain.Item) int {
		if a.BoostPriority != b.BoostPriority {
			if a.BoostPriority > b.BoostPriority {
				return -1
			}
			return 1
		}
		return order.Compare(a, b)
	})

	rand.Shuffle(len(normal), func(i, j int) {
		normal[i], normal[j] = normal[j], normal[i]
	})

	return append(boosted, normal...)
}
