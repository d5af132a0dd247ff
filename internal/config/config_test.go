package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, time.Hour, cfg.Boost.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Boost.LazySweepMinGap)
	assert.Equal(t, 16, cfg.Boost.ClickMaxAttempts)
	assert.Equal(t, 20, cfg.Boost.DefaultPageSize)
	assert.Equal(t, 100, cfg.Boost.MaxPageSize)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 1024, cfg.Kafka.QueueSize)
	assert.Equal(t, 2*time.Second, cfg.Psql.StatementTimeout)
	assert.Equal(t, 5*time.Second, cfg.Kafka.WriteTimeout)

	tol, err := cfg.Boost.Tolerance()
	require.NoError(t, err)
	assert.True(t, tol.Equal(decimal.RequireFromString("0.01")))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_QUEUE_SIZE", "16")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("BOOST_SWEEP_INTERVAL", "5m")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 16, cfg.Kafka.QueueSize)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Boost.SweepInterval)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("tolerance", func(t *testing.T) {
		t.Setenv("BOOST_BUDGET_TOLERANCE", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}
