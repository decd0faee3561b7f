package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/navikt/ztalks/internal/metrics"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/pretalx"
	"github.com/navikt/ztalks/internal/schedule"
	"github.com/navikt/ztalks/internal/store"
	"github.com/navikt/ztalks/internal/utils"
)

// Fetcher retrieves the raw schedule document
type Fetcher interface {
	Fetch(ctx context.Context) (pretalx.Response, error)
}

// ScheduleUpdateCallback is a function type for schedule update callbacks
type ScheduleUpdateCallback func(models.Schedule)

// Outcome describes the result of one synchronization
type Outcome struct {
	// Changed is true when a new schedule was normalized and stored
	Changed     bool
	Schedule    models.Schedule
	Fingerprint string
	Skipped     []schedule.SkippedTalk
	// Err is the fetch or validation error, if any. The stored schedule is untouched when set.
	Err error
}

// Synchronizer fetches the remote schedule and persists it when it changed
type Synchronizer struct {
	fetcher  Fetcher
	store    *store.ScheduleStore
	detector *schedule.Detector
	metrics  *metrics.Metrics
	now      func() time.Time

	mu              sync.Mutex
	lastFailed      bool
	updateCallbacks []ScheduleUpdateCallback
}

// NewSynchronizer creates a new Synchronizer. m may be nil.
func NewSynchronizer(fetcher Fetcher, st *store.ScheduleStore, m *metrics.Metrics) *Synchronizer {
	return &Synchronizer{
		fetcher:         fetcher,
		store:           st,
		detector:        schedule.NewDetector(st),
		metrics:         m,
		now:             time.Now,
		updateCallbacks: make([]ScheduleUpdateCallback, 0),
	}
}

// RegisterUpdateCallback registers a callback function to be called when the schedule changes
func (s *Synchronizer) RegisterUpdateCallback(callback ScheduleUpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks with the new schedule
func (s *Synchronizer) notifyUpdate(sched models.Schedule) {
	for _, callback := range s.updateCallbacks {
		callback(sched)
	}
}

// Current returns the stored schedule
func (s *Synchronizer) Current(ctx context.Context) (models.Schedule, bool) {
	return s.store.LoadSchedule(ctx)
}

// Sync runs one fetch-compare-persist cycle. Failures never touch the stored
// schedule; they are logged and reported in Outcome.Err.
func (s *Synchronizer) Sync(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("Failed to fetch schedule: %v", err)
		s.metrics.FetchDone(metrics.FetchError, s.now())
		s.lastFailed = true
		return Outcome{Err: err}
	}

	raw, err := schedule.Decode(resp.Body)
	if err == nil {
		err = schedule.Validate(raw)
	}
	if err != nil {
		log.Printf("Ignoring invalid schedule: %v", err)
		s.metrics.FetchDone(metrics.FetchInvalid, s.now())
		s.lastFailed = true
		return Outcome{Err: err}
	}

	fingerprint, err := schedule.FingerprintOf(resp.Body)
	if err != nil {
		log.Printf("Failed to fingerprint schedule: %v", err)
		s.metrics.FetchDone(metrics.FetchInvalid, s.now())
		s.lastFailed = true
		return Outcome{Err: err}
	}

	if resp.NotModified {
		s.metrics.FetchDone(metrics.FetchNotModified, s.now())
	} else {
		s.metrics.FetchDone(metrics.FetchOK, s.now())
	}

	retry := s.lastFailed
	s.lastFailed = false
	if !retry && !s.detector.Changed(ctx, fingerprint) {
		// A fingerprint only counts while the schedule it describes can be read
		if _, stored := s.store.LoadSchedule(ctx); stored {
			return Outcome{Fingerprint: fingerprint}
		}
		log.Printf("Stored schedule is missing or unreadable, storing it again")
	}

	result, err := schedule.Normalize(raw)
	if err != nil {
		log.Printf("Failed to normalize schedule: %v", err)
		s.lastFailed = true
		return Outcome{Err: err}
	}

	for _, skipped := range result.Skipped {
		log.Printf("Skipping talk %d (%s) in room %s: %v",
			skipped.Index,
			utils.SanitizeLogString(skipped.Title),
			utils.SanitizeLogString(skipped.Room),
			skipped.Err)
	}
	s.metrics.TalksSkipped(len(result.Skipped))

	// The fingerprint is only stored next to the schedule it describes
	if s.store.SaveSchedule(ctx, result.Schedule) {
		s.store.SaveFingerprint(ctx, fingerprint)
	}

	log.Printf("Schedule changed: %d rooms", len(result.Schedule.Rooms))
	s.metrics.ScheduleChanged(len(result.Schedule.Rooms))
	s.notifyUpdate(result.Schedule)

	return Outcome{
		Changed:     true,
		Schedule:    result.Schedule,
		Fingerprint: fingerprint,
		Skipped:     result.Skipped,
	}
}
