package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"boost-engine/internal/core/port"
)

// releaseScript deletes the lock only if it still carries our token, so a
// holder whose lease ran out cannot release someone else's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements port.Locker with SET NX PX leases.
type Locker struct {
	Client *redis.Client
	prefix string
}

var _ port.Locker = (*Locker)(nil)

func New(addr, pass string, db int) *Locker {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, Password: pass, DB: db,
	})
	return &Locker{Client: rdb, prefix: "boost-engine:lock:"}
}

// TryLock acquires key for ttl. ok is false when another holder owns it.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := uuid.NewString()
	full := l.prefix + key
	ok, err := l.Client.SetNX(ctx, full, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}
	unlock := func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.Client, []string{full}, token).Err()
	}
	return unlock, true, nil
}

// Ping checks connectivity.
func (l *Locker) Ping(ctx context.Context) error {
	return l.Client.Ping(ctx).Err()
}

func (l *Locker) Close() error {
	return l.Client.Close()
}
