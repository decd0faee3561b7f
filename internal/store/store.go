// Package store persists the kiosk's cached state in the key-value repository.
// Persistence is best effort: reads fall back to "nothing stored" and failed
// writes are logged, never returned as errors.
package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/navikt/ztalks/internal/metrics"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/repository"
)

// Keys used in the repository
const (
	KeySchedule     = "schedule"
	KeyScheduleHash = "scheduleHash"
	KeyRoom         = "room"
)

// ScheduleStore reads and writes the normalized schedule, its fingerprint and the display state
type ScheduleStore struct {
	repo    repository.Repository
	metrics *metrics.Metrics
}

// NewScheduleStore creates a store on top of repo. m may be nil.
func NewScheduleStore(repo repository.Repository, m *metrics.Metrics) *ScheduleStore {
	return &ScheduleStore{repo: repo, metrics: m}
}

// LoadSchedule returns the stored schedule, or false if none is usable
func (s *ScheduleStore) LoadSchedule(ctx context.Context) (models.Schedule, bool) {
	var schedule models.Schedule
	if !s.read(ctx, KeySchedule, &schedule) {
		return models.Schedule{}, false
	}
	if schedule.IsEmpty() {
		return models.Schedule{}, false
	}
	return schedule, true
}

// SaveSchedule replaces the stored schedule. It returns false if the write failed.
func (s *ScheduleStore) SaveSchedule(ctx context.Context, schedule models.Schedule) bool {
	return s.write(ctx, KeySchedule, schedule)
}

// LoadFingerprint returns the stored fingerprint, or false if none is stored
func (s *ScheduleStore) LoadFingerprint(ctx context.Context) (string, bool) {
	var fingerprint string
	if !s.read(ctx, KeyScheduleHash, &fingerprint) || fingerprint == "" {
		return "", false
	}
	return fingerprint, true
}

// SaveFingerprint replaces the stored fingerprint. It returns false if the write failed.
func (s *ScheduleStore) SaveFingerprint(ctx context.Context, fingerprint string) bool {
	return s.write(ctx, KeyScheduleHash, fingerprint)
}

// LoadDisplayState returns the stored display state or the zero state
func (s *ScheduleStore) LoadDisplayState(ctx context.Context) models.DisplayState {
	var state models.DisplayState
	if !s.read(ctx, KeyRoom, &state) {
		return models.DisplayState{}
	}
	return state
}

// SaveDisplayState replaces the stored display state. It returns false if the write failed.
func (s *ScheduleStore) SaveDisplayState(ctx context.Context, state models.DisplayState) bool {
	return s.write(ctx, KeyRoom, state)
}

// read decodes the JSON value under key into v
func (s *ScheduleStore) read(ctx context.Context, key string, v any) bool {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if !repository.IsNotFound(err) {
			log.Printf("Error reading %s from store: %v", key, err)
			s.metrics.StoreFailed("read", key)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("Ignoring malformed %s in store: %v", key, err)
		s.metrics.StoreFailed("decode", key)
		return false
	}
	return true
}

// write stores v as JSON under key
func (s *ScheduleStore) write(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding %s for store: %v", key, err)
		s.metrics.StoreFailed("encode", key)
		return false
	}

	if err := s.repo.Set(ctx, key, string(data)); err != nil {
		log.Printf("Error writing %s to store: %v", key, err)
		s.metrics.StoreFailed("write", key)
		return false
	}
	return true
}
