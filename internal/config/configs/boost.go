package configs

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Boost holds the engine's tunables.
type Boost struct {
	// SweepInterval is how often overdue boosts are expired.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	// LazySweepMinGap debounces sweeps requested by listings.
	LazySweepMinGap time.Duration `env:"LAZY_SWEEP_MIN_GAP" envDefault:"30s"`
	// ClickMaxAttempts bounds optimistic retries per click.
	ClickMaxAttempts int `env:"CLICK_MAX_ATTEMPTS" envDefault:"16"`
	// BudgetTolerance is the overfunding allowed at admission, as a decimal
	// string.
	BudgetTolerance string `env:"BUDGET_TOLERANCE" envDefault:"0.01"`
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize     int    `env:"MAX_PAGE_SIZE" envDefault:"100"`
}

// Tolerance parses BudgetTolerance.
func (c Boost) Tolerance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.BudgetTolerance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse BOOST_BUDGET_TOLERANCE: %w", err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("BOOST_BUDGET_TOLERANCE must not be negative")
	}
	return d, nil
}
