// Package scheduler runs the periodic expiry sweep as a supervised service.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"boost-engine/internal/core/port"
	"boost-engine/internal/metrics"
)

const lockKey = "expiry-sweep"

// Expirer closes overdue boosts. port.BoostUseCase satisfies it.
type Expirer interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Config tunes the Sweeper.
type Config struct {
	Interval time.Duration
	// MinGap is the shortest time between two sweeps started by Nudge.
	MinGap  time.Duration
	LockTTL time.Duration
}

// Sweeper expires overdue boosts on a fixed interval and, between ticks,
// whenever a listing notices boosted items. Only the instance holding the
// lock sweeps. It implements suture.Service and port.SweepTrigger.
type Sweeper struct {
	expirer Expirer
	locker  port.Locker
	logger  *slog.Logger
	cfg     Config

	nudges chan struct{}

	mu      sync.Mutex
	lastRun time.Time
	now     func() time.Time
}

var _ port.SweepTrigger = (*Sweeper)(nil)

// NewSweeper creates a sweeper. A nil locker is replaced by a process-local
// one.
func NewSweeper(expirer Expirer, locker port.Locker, logger *slog.Logger, cfg Config) *Sweeper {
	if locker == nil {
		locker = NewLocalLocker()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 2 * time.Minute
	}
	return &Sweeper{
		expirer: expirer,
		locker:  locker,
		logger:  logger,
		cfg:     cfg,
		nudges:  make(chan struct{}, 1),
		now:     time.Now,
	}
}

// Nudge asks for a sweep without blocking. Requests arriving while one is
// pending are merged.
func (s *Sweeper) Nudge() {
	select {
	case s.nudges <- struct{}{}:
	default:
	}
}

// Serve sweeps once at start, then on every tick and accepted nudge until
// ctx is done.
func (s *Sweeper) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.run(ctx, "startup")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx, "interval")
		case <-s.nudges:
			if s.sinceLastRun() < s.cfg.MinGap {
				continue
			}
			s.run(ctx, "nudge")
		}
	}
}

func (s *Sweeper) String() string {
	return "expiry-sweeper"
}

// RunOnce performs a single locked sweep. ran is false when another holder
// owns the lock.
func (s *Sweeper) RunOnce(ctx context.Context) (expired int, ran bool, err error) {
	s.mu.Lock()
	s.lastRun = s.now()
	s.mu.Unlock()

	unlock, ok, err := s.locker.TryLock(ctx, lockKey, s.cfg.LockTTL)
	if err != nil {
		metrics.SweepRuns.WithLabelValues("lock_error").Inc()
		return 0, false, err
	}
	if !ok {
		metrics.SweepRuns.WithLabelValues("skipped").Inc()
		return 0, false, nil
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
			s.logger.Warn("release sweep lock failed", slog.Any("error", uerr))
		}
	}()

	expired, err = s.expirer.SweepExpired(ctx)
	return expired, true, err
}

func (s *Sweeper) run(ctx context.Context, trigger string) {
	start := time.Now()
	n, ran, err := s.RunOnce(ctx)
	switch {
	case err != nil:
		s.logger.Warn("expiry sweep failed", slog.String("trigger", trigger), slog.Any("error", err))
	case !ran:
		s.logger.Debug("expiry sweep skipped, lock held elsewhere", slog.String("trigger", trigger))
	default:
		s.logger.Debug("expiry sweep done",
			slog.String("trigger", trigger),
			slog.Int("expired", n),
			slog.Duration("took", time.Since(start)),
		)
	}
}

func (s *Sweeper) sinceLastRun() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.lastRun)
}

// LocalLocker is a port.Locker for a single process. The ttl is ignored.
type LocalLocker struct {
	mu sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) TryLock(_ context.Context, _ string, _ time.Duration) (func(context.Context) error, bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}, true, nil
}
