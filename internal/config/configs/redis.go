package configs

import "time"

// Redis configures the client used for the cluster-wide sweep lock.
type Redis struct {
	// Addr is host:port. Empty disables Redis and the sweeper falls back to
	// a process-local lock.
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"2m"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
