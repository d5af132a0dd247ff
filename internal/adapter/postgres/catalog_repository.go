package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

// CatalogRepository implements port.CatalogRepository over the catalog_items
// read model.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

var _ port.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListEligible returns every active, approved item matching q. Ordering is
// left to the listing composer.
func (r *CatalogRepository) ListEligible(ctx context.Context, q domain.CatalogQuery) ([]domain.Item, error) {
	query := `
        SELECT
            id,
            item_type,
            shop_id,
            title,
            category,
            price,
            is_boosted,
            boost_priority,
            created_at
        FROM catalog_items
        WHERE item_type = $1
          AND is_active AND is_approved
          AND ($2 = '' OR title ILIKE '%' || $2 || '%' ESCAPE '\')
          AND ($3 = '' OR lower(category) = lower($3))
          AND ($4 = '' OR shop_id = $4)`
	rows, err := r.pool.Query(ctx, query, q.Type, escapeLike(strings.TrimSpace(q.Search)), q.Category, q.ShopID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Item, error) {
		var it domain.Item
		err := row.Scan(
			&it.ID,
			&it.Type,
			&it.ShopID,
			&it.Title,
			&it.Category,
			&it.Price,
			&it.IsBoosted,
			&it.BoostPriority,
			&it.CreatedAt,
		)
		return it, err
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
