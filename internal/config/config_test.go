package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetKioskConfigDefaults(t *testing.T) {
	for _, key := range []string{"SCHEDULE_URL", "SYNC_SCHEDULE", "ROTATION_INTERVAL", "LABEL_INTERVAL", "FETCH_TIMEOUT", "DISPLAY_TIMEZONE", "HIDDEN_ROOMS", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := GetKioskConfig()
	assert.Contains(t, cfg.ScheduleURL, "schedule.json")
	assert.Equal(t, "@every 5s", cfg.SyncSchedule)
	assert.Equal(t, 5*time.Second, cfg.RotationInterval)
	assert.Equal(t, time.Minute, cfg.LabelInterval)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Empty(t, cfg.HiddenRooms)
	assert.Equal(t, "8080", cfg.Port)
}

func TestGetKioskConfigFromEnv(t *testing.T) {
	t.Setenv("SCHEDULE_URL", "http://example.test/schedule.json")
	t.Setenv("ROTATION_INTERVAL", "10s")
	t.Setenv("LABEL_INTERVAL", "-1s")
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("HIDDEN_ROOMS", "Raum E, Raum F,,")

	cfg := GetKioskConfig()
	assert.Equal(t, "http://example.test/schedule.json", cfg.ScheduleURL)
	assert.Equal(t, 10*time.Second, cfg.RotationInterval)
	assert.Equal(t, time.Minute, cfg.LabelInterval, "non-positive values use the default")
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout, "unparsable values use the default")
	assert.Equal(t, []string{"Raum E", "Raum F"}, cfg.HiddenRooms)
}

func TestKioskConfigLocation(t *testing.T) {
	assert.Equal(t, time.UTC, KioskConfig{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, "UTC", KioskConfig{Timezone: "UTC"}.Location().String())
}

func TestGetRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST_ZTALKS", "valkey")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TTL_HOURS", "24")

	cfg := GetRedisConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "valkey", cfg.Host)
	assert.Equal(t, "6379", cfg.Port)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, "ztalks:", cfg.KeyPrefix)
	assert.Equal(t, 24*time.Hour, cfg.TTL)

	t.Setenv("REDIS_ENABLED", "maybe")
	assert.False(t, GetRedisConfig().Enabled)
}
