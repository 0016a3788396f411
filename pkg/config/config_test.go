package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DB_MIGRATE_ON_START", "false")
	t.Setenv("OWNERS_INFO_CACHE_TTL", "90s")

	cfg := New()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Postgres.MigrateOnStart)
	assert.Equal(t, 90*time.Second, cfg.Cache.OwnersInfoTTL)
}

func TestNew_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("OWNERS_INFO_CACHE_TTL", "soon")

	cfg := New()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 10*time.Minute, cfg.Cache.OwnersInfoTTL)
}
