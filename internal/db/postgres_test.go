package db

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/config/configs"
)

func postgresConfig(t *testing.T, addr string) configs.Postgres {
	t.Helper()
	u, err := url.Parse(addr)
	require.NoError(t, err)
	return configs.Postgres{
		Addr:             *u,
		MaxConns:         7,
		ConnectTimeout:   3 * time.Second,
		StatementTimeout: 1500 * time.Millisecond,
	}
}

func TestPoolConfigAppliesSessionSettings(t *testing.T) {
	conf, err := poolConfig(postgresConfig(t, "postgres://u:p@db:5432/boosts?sslmode=disable"))
	require.NoError(t, err)

	assert.Equal(t, int32(7), conf.MaxConns)
	assert.Equal(t, 3*time.Second, conf.ConnConfig.ConnectTimeout)
	assert.Equal(t, "1500", conf.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "boost-engine", conf.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigKeepsExplicitAddressSettings(t *testing.T) {
	cfg := postgresConfig(t, "postgres://u:p@db:5432/boosts?sslmode=disable&application_name=worker&connect_timeout=9&pool_max_conns=3")
	cfg.MaxConns = 0
	cfg.StatementTimeout = 0

	conf, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(3), conf.MaxConns)
	assert.Equal(t, 9*time.Second, conf.ConnConfig.ConnectTimeout)
	assert.Equal(t, "worker", conf.ConnConfig.RuntimeParams["application_name"])
	assert.NotContains(t, conf.ConnConfig.RuntimeParams, "statement_timeout")
}
