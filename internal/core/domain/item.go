package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry handed to the listing composer. IsBoosted and
// BoostPriority are a cache of the target's active boost and may lag behind
// the boost record by at most one sweep interval.
type Item struct {
	ID            string          `json:"id"`
	Type          TargetType      `json:"type"`
	ShopID        string          `json:"shopId"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	IsBoosted     bool            `json:"isBoosted"`
	BoostPriority int             `json:"boostPriority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SortField is a catalog field a listing may be ordered by.
type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortPrice     SortField = "price"
	SortTitle     SortField = "title"
)

// SortSpec is the order the catalog would use without boosts.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// DefaultSort orders newest first.
var DefaultSort = SortSpec{Field: SortCreatedAt, Desc: true}

// ParseSortSpec builds a SortSpec from query values. Empty values fall back to
// DefaultSort.
func ParseSortSpec(field, order string) (SortSpec, error) {
	ss := DefaultSort
	switch SortField(field) {
	case "":
	case SortCreatedAt, SortPrice, SortTitle:
		ss.Field = SortField(field)
		ss.Desc = ss.Field == SortCreatedAt
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidArgument, field)
	}
	switch strings.ToLower(order) {
	case "":
	case "asc":
		ss.Desc = false
	case "desc":
		ss.Desc = true
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown sort order %q", ErrInvalidArgument, order)
	}
	return ss, nil
}

// Compare orders a and b by s, returning a negative number when a
// comes first. Items equal on the field are ordered by id so the result is
// total.
func (s SortSpec) Compare(a, b Item) int {
	var c int
	switch s.Field {
	case SortPrice:
		c = a.Price.Cmp(b.Price)
	case SortTitle:
		c = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if s.Desc {
		c = -c
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// CatalogQuery selects the pool of eligible items for a listing.
type CatalogQuery struct {
	Type     TargetType
	Search   string
	Category string
	ShopID   string
	Sort     SortSpec
}
