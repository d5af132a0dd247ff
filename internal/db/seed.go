package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

var (
	demoCategories = []string{"electronics", "books", "garden", "music"}
	demoShops      = []string{"shop-1", "shop-2", "shop-3"}
)

// DemoItems returns a deterministic demo catalog of products and events.
func DemoItems(now time.Time) []domain.Item {
	r := rand.New(rand.NewPCG(42, 7))
	items := make([]domain.Item, 0, 40)
	for i := 1; i <= 30; i++ {
		items = append(items, domain.Item{
			ID:        fmt.Sprintf("product-%d", i),
			Type:      domain.TargetProduct,
			ShopID:    demoShops[r.IntN(len(demoShops))],
			Title:     fmt.Sprintf("Product %d", i),
			Category:  demoCategories[r.IntN(len(demoCategories))],
			Price:     decimal.New(int64(100+r.IntN(9900)), -2),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	for i := 1; i <= 10; i++ {
		items = append(items, domain.Item{
			ID:        fmt.Sprintf("event-%d", i),
			Type:      domain.TargetEvent,
			ShopID:    demoShops[r.IntN(len(demoShops))],
			Title:     fmt.Sprintf("Event %d", i),
			Category:  "music",
			Price:     decimal.New(int64(500+r.IntN(5000)), -2),
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return items
}

// SeedBoosts admits a handful of demo boosts through the use case. Payment
// ids are fixed, so running it twice leaves the existing boosts alone.
func SeedBoosts(ctx context.Context, svc port.BoostUseCase, now time.Time) error {
	week := now.Add(7 * 24 * time.Hour)
	demo := []domain.Admission{
		{Target: domain.Target{Type: domain.TargetProduct, ID: "product-3"}, Priority: 5},
		{Target: domain.Target{Type: domain.TargetProduct, ID: "product-7"}, Priority: 2},
		{Target: domain.Target{Type: domain.TargetProduct, ID: "product-12"}, Priority: 2, EndDate: &week},
		{Target: domain.Target{Type: domain.TargetEvent, ID: "event-4"}, Priority: 1},
	}
	for i, a := range demo {
		a.OwnerID = "shop-1"
		a.PaymentID = fmt.Sprintf("demo-payment-%d", i+1)
		a.Config = domain.BoostConfig{
			MaxClicks:    100,
			CostPerClick: decimal.RequireFromString("0.10"),
			TotalBudget:  decimal.RequireFromString("10.00"),
		}
		_, err := svc.CreateBoost(ctx, a)
		if errors.Is(err, domain.ErrPaymentAlreadyUsed) || errors.Is(err, domain.ErrDuplicateActiveBoost) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed boost %s: %w", a.Target, err)
		}
	}
	return nil
}

// Seed inserts the demo catalog into catalog_items.
func Seed(ctx context.Context, db *pgxpool.Pool, now time.Time) error {
	for _, it := range DemoItems(now) {
		_, err := db.Exec(ctx, `INSERT INTO catalog_items
    (id, item_type, shop_id, title, category, price, is_active, is_approved, created_at)
VALUES ($1,$2,$3,$4,$5,$6,true,true,$7) ON CONFLICT DO NOTHING`,
			it.ID, it.Type, it.ShopID, it.Title, it.Category, it.Price, it.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
