package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

const (
	uniqueViolation = "23505"

	constraintActivePerTarget = "boosts_one_active_per_target"
	constraintPaymentID       = "boosts_payment_id_key"
)

const boostColumns = `
            id,
            target_type,
            target_id,
            owner_id,
            payment_id,
            status,
            max_clicks,
            cost_per_click,
            total_budget,
            total_clicks,
            remaining_clicks,
            total_spent,
            remaining_budget,
            last_click_at,
            priority,
            start_date,
            end_date,
            version,
            status_changed_by,
            created_at,
            updated_at,
            closed_at`

// refreshFlagsQuery recomputes the denormalized boost flags of one catalog
// item from the boosts table. Rows that already carry the right values are
// left untouched.
const refreshFlagsQuery = `
        UPDATE catalog_items ci
        SET is_boosted = f.is_boosted, boost_priority = f.priority
        FROM (
            SELECT count(*) > 0 AS is_boosted, COALESCE(max(priority), 0) AS priority
            FROM boosts
            WHERE target_type = $1 AND target_id = $2 AND status = 'active'
        ) f
        WHERE ci.item_type = $1 AND ci.id = $2
          AND (ci.is_boosted, ci.boost_priority) IS DISTINCT FROM (f.is_boosted, f.priority)`

// BoostRepository implements port.BoostRepository using pgxpool for
// PostgreSQL. Every status change refreshes the target's catalog flags in the
// same transaction.
type BoostRepository struct {
	pool *pgxpool.Pool
}

var _ port.BoostRepository = (*BoostRepository)(nil)

// NewBoostRepository returns a new repository instance.
func NewBoostRepository(pool *pgxpool.Pool) *BoostRepository {
	return &BoostRepository{pool: pool}
}

// Create inserts b and marks its target as boosted.
func (r *BoostRepository) Create(ctx context.Context, b *domain.Boost) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO boosts (`+boostColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
			b.ID, b.Target.Type, b.Target.ID, b.OwnerID, b.PaymentID, b.Status,
			b.Config.MaxClicks, b.Config.CostPerClick, b.Config.TotalBudget,
			b.Stats.TotalClicks, b.Stats.RemainingClicks, b.Stats.TotalSpent, b.Stats.RemainingBudget, b.Stats.LastClickAt,
			b.Priority, b.StartDate, b.EndDate, b.Version, b.StatusChangedBy, b.CreatedAt, b.UpdatedAt, b.ClosedAt,
		)
		if err != nil {
			return mapUniqueViolation(err)
		}
		_, err = tx.Exec(ctx, refreshFlagsQuery, b.Target.Type, b.Target.ID)
		return err
	})
}

// GetByID returns a boost by id.
func (r *BoostRepository) GetByID(ctx context.Context, id string) (*domain.Boost, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrBoostNotFound
	}
	rows, err := r.pool.Query(ctx, `SELECT `+boostColumns+` FROM boosts WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBoost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBoostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetActiveByTarget returns the target's active boost.
func (r *BoostRepository) GetActiveByTarget(ctx context.Context, target domain.Target) (*domain.Boost, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+boostColumns+` FROM boosts
WHERE target_type = $1 AND target_id = $2 AND status = 'active'`, target.Type, target.ID)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBoost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBoostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns an owner's boosts, newest first.
func (r *BoostRepository) ListByOwner(ctx context.Context, ownerID string, status *domain.BoostStatus, limit, offset int) ([]domain.Boost, error) {
	var st *string
	if status != nil {
		s := string(*status)
		st = &s
	}
	rows, err := r.pool.Query(ctx, `SELECT `+boostColumns+` FROM boosts
WHERE owner_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`, ownerID, st, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBoost)
}

// ListClicks returns a page of the click history, oldest first.
func (r *BoostRepository) ListClicks(ctx context.Context, boostID string, limit, offset int) ([]domain.ClickRecord, error) {
	if uuid.Validate(boostID) != nil {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, boost_id::text, clicked_at, cost, source, user_agent, ip_address
FROM boost_clicks
WHERE boost_id = $1
ORDER BY id
LIMIT $2 OFFSET $3`, boostID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClickRecord, error) {
		var c domain.ClickRecord
		err := row.Scan(&c.ID, &c.BoostID, &c.Timestamp, &c.Cost, &c.Source, &c.UserAgent, &c.IPAddress)
		return c, err
	})
}

// Update commits b if its stored version still equals expectedVersion.
func (r *BoostRepository) Update(ctx context.Context, b *domain.Boost, expectedVersion int64, click *domain.ClickRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE boosts SET
            status = $3,
            total_clicks = $4,
            remaining_clicks = $5,
            total_spent = $6,
            remaining_budget = $7,
            last_click_at = $8,
            status_changed_by = $9,
            updated_at = $10,
            closed_at = $11,
            version = version + 1
        WHERE id = $1 AND version = $2`,
			b.ID, expectedVersion, b.Status,
			b.Stats.TotalClicks, b.Stats.RemainingClicks, b.Stats.TotalSpent, b.Stats.RemainingBudget, b.Stats.LastClickAt,
			b.StatusChangedBy, b.UpdatedAt, b.ClosedAt,
		)
		if err != nil {
			return mapUniqueViolation(err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM boosts WHERE id = $1)`, b.ID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domain.ErrBoostNotFound
			}
			return port.ErrVersionConflict
		}

		if click != nil {
			_, err = tx.Exec(ctx, `INSERT INTO boost_clicks (boost_id, clicked_at, cost, source, user_agent, ip_address)
VALUES ($1,$2,$3,$4,$5,$6)`, b.ID, click.Timestamp, click.Cost, click.Source, click.UserAgent, click.IPAddress)
			if err != nil {
				return err
			}
		}

		if _, err = tx.Exec(ctx, refreshFlagsQuery, b.Target.Type, b.Target.ID); err != nil {
			return err
		}
		b.Version = expectedVersion + 1
		return nil
	})
}

// ExpireDue moves every overdue active boost to expired in one statement.
// Boosts completed or paused concurrently no longer match the predicate and
// keep their status.
func (r *BoostRepository) ExpireDue(ctx context.Context, now time.Time) ([]domain.Boost, error) {
	var expired []domain.Boost
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `UPDATE boosts SET
            status = 'expired',
            version = version + 1,
            updated_at = $1,
            closed_at = $1
        WHERE status = 'active' AND end_date IS NOT NULL AND end_date < $1
        RETURNING `+boostColumns, now.UTC())
		if err != nil {
			return err
		}
		expired, err = pgx.CollectRows(rows, scanBoost)
		if err != nil {
			return err
		}
		for _, b := range expired {
			if _, err = tx.Exec(ctx, refreshFlagsQuery, b.Target.Type, b.Target.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}

func (r *BoostRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

func scanBoost(row pgx.CollectableRow) (domain.Boost, error) {
	var b domain.Boost
	err := row.Scan(
		&b.ID,
		&b.Target.Type,
		&b.Target.ID,
		&b.OwnerID,
		&b.PaymentID,
		&b.Status,
		&b.Config.MaxClicks,
		&b.Config.CostPerClick,
		&b.Config.TotalBudget,
		&b.Stats.TotalClicks,
		&b.Stats.RemainingClicks,
		&b.Stats.TotalSpent,
		&b.Stats.RemainingBudget,
		&b.Stats.LastClickAt,
		&b.Priority,
		&b.StartDate,
		&b.EndDate,
		&b.Version,
		&b.StatusChangedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.ClosedAt,
	)
	return b, err
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case constraintActivePerTarget:
		return domain.ErrDuplicateActiveBoost
	case constraintPaymentID:
		return domain.ErrPaymentAlreadyUsed
	default:
		return fmt.Errorf("unique violation on %s: %w", pgErr.ConstraintName, err)
	}
}
