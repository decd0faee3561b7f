// Package config provides configuration management for the application
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// KioskConfig holds everything the display loop needs
type KioskConfig struct {
	// ScheduleURL is the pretalx schedule.json export
	ScheduleURL string
	// SyncSchedule is a cron spec for re-fetching the schedule
	SyncSchedule     string
	RotationInterval time.Duration
	LabelInterval    time.Duration
	FetchTimeout     time.Duration
	// Timezone is the IANA zone used to display and compare talk times
	Timezone string
	// HiddenRooms are left out of the room list and the overview rotation
	HiddenRooms []string
	Port        string
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for stored keys (0 means no expiration)
	TTL time.Duration
}

// GetKioskConfig loads kiosk configuration from environment variables
func GetKioskConfig() KioskConfig {
	return KioskConfig{
		ScheduleURL:      getEnv("SCHEDULE_URL", "https://pretalx.luga.de/lit-2024/schedule/export/schedule.json"),
		SyncSchedule:     getEnv("SYNC_SCHEDULE", "@every 5s"),
		RotationInterval: getEnvDuration("ROTATION_INTERVAL", 5*time.Second),
		LabelInterval:    getEnvDuration("LABEL_INTERVAL", 60*time.Second),
		FetchTimeout:     getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		Timezone:         getEnv("DISPLAY_TIMEZONE", "Europe/Berlin"),
		HiddenRooms:      getEnvList("HIDDEN_ROOMS"),
		Port:             getEnv("PORT", "8080"),
	}
}

// Location resolves the display timezone, falling back to UTC
func (c KioskConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours)
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_TTL_HOURS", "0"))
	ttl := time.Duration(ttlHours) * time.Hour

	// Parse DB index
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI_ZTALKS", ""),
		Host:      getEnv("REDIS_HOST_ZTALKS", getEnv("REDIS_ADDRESS", "localhost")),
		Port:      getEnv("REDIS_PORT_ZTALKS", "6379"),
		Username:  getEnv("REDIS_USERNAME_ZTALKS", ""),
		Password:  getEnv("REDIS_PASSWORD_ZTALKS", getEnv("REDIS_PASSWORD", "")),
		DB:        db,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "ztalks:"),
		TTL:       ttl,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvDuration retrieves a duration such as "5s"; non-positive values fall back to the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
