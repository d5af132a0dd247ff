package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURLDropsPoolParams(t *testing.T) {
	got, err := migrateURL("postgres://u:p@db:5432/boosts?sslmode=disable&pool_max_conns=20&pool_min_conns=2")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/boosts?sslmode=disable", got)

	got, err = migrateURL("postgresql://db/boosts")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://db/boosts", got)
}

func TestMigrateURLRejectsOtherSchemes(t *testing.T) {
	_, err := migrateURL("mysql://db/boosts")
	assert.Error(t, err)

	_, err = migrateURL("host=db user=u")
	assert.Error(t, err)
}

func TestCheckSchema(t *testing.T) {
	assert.NoError(t, checkSchema(0, false, 1))
	assert.NoError(t, checkSchema(1, false, 1))
	assert.ErrorContains(t, checkSchema(1, true, 1), "dirty")
	assert.ErrorContains(t, checkSchema(3, false, 1), "newer")
}
