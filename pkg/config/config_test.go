package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDSNDefaultsToSQLitePath(t *testing.T) {
	cfg := DBConfig{Driver: DriverSQLite, SQLitePath: "marketconnect.db"}
	require.NoError(t, cfg.ensureDSN())
	assert.Equal(t, "marketconnect.db", cfg.DSN)
}

func TestEnsureDSNRequiresPostgresDSN(t *testing.T) {
	cfg := DBConfig{Driver: DriverPostgres}
	assert.Error(t, cfg.ensureDSN())

	cfg.DSN = "postgres://localhost/marketconnect"
	assert.NoError(t, cfg.ensureDSN())
}

func TestEnsureDSNRejectsUnknownDriver(t *testing.T) {
	cfg := DBConfig{Driver: "mysql"}
	assert.Error(t, cfg.ensureDSN())
}

func TestOptionalSections(t *testing.T) {
	assert.False(t, RedisConfig{}.Enabled())
	assert.True(t, RedisConfig{URL: "redis://localhost:6379"}.Enabled())
	assert.False(t, AuthConfig{}.Enabled())
	assert.True(t, AuthConfig{Secret: "s3cret"}.Enabled())
}
