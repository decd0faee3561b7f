// Package kiosk drives the conference room display: it applies schedule
// updates, rotates through rooms in overview mode and keeps the time labels
// live. All display work happens on a single goroutine.
package kiosk

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/navikt/ztalks/internal/clock"
	"github.com/navikt/ztalks/internal/display"
	"github.com/navikt/ztalks/internal/labels"
	"github.com/navikt/ztalks/internal/metrics"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/selector"
	"github.com/navikt/ztalks/internal/service"
	"github.com/navikt/ztalks/internal/utils"
)

// ErrUnknownRoom is returned when a room is not in the displayed room list
var ErrUnknownRoom = errors.New("unknown room")

// ErrNotRunning is returned by commands after the loop has stopped
var ErrNotRunning = errors.New("kiosk is not running")

// Syncer runs one schedule synchronization
type Syncer interface {
	Sync(ctx context.Context) service.Outcome
	Current(ctx context.Context) (models.Schedule, bool)
}

// StateStore persists the selected room
type StateStore interface {
	LoadDisplayState(ctx context.Context) models.DisplayState
	SaveDisplayState(ctx context.Context, state models.DisplayState) bool
}

// Options configures a Kiosk
type Options struct {
	Clock            clock.Clock
	Location         *time.Location
	RotationInterval time.Duration
	LabelInterval    time.Duration
	HiddenRooms      []string
	Metrics          *metrics.Metrics
}

// Status is a consistent view of the kiosk for readers outside the loop
type Status struct {
	Rooms       []string
	Display     models.DisplayState
	Mode        Mode
	Showing     string
	HasSchedule bool
}

type command struct {
	room  string
	reply chan error
}

// Kiosk owns the schedule, the display state and the rotation
type Kiosk struct {
	syncer   Syncer
	state    StateStore
	surface  display.Surface
	labels   *labels.Updater
	clock    clock.Clock
	loc      *time.Location
	rotate   time.Duration
	relabel  time.Duration
	hidden   map[string]bool
	metrics  *metrics.Metrics
	commands chan command
	requests chan struct{}
	results  chan service.Outcome
	done     chan struct{}
	wg       sync.WaitGroup

	// Owned by the loop goroutine
	schedule       models.Schedule
	hasSchedule    bool
	rooms          []string
	displayState   models.DisplayState
	rotation       Rotation
	rotationTicker *clock.Ticker
	syncing        bool
	shown          string
	shownSelection models.Selection

	mu       sync.RWMutex
	status   Status
	snapshot models.Schedule
}

// New creates a kiosk rendering to surface
func New(syncer Syncer, state StateStore, surface display.Surface, opts Options) *Kiosk {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RotationInterval <= 0 {
		opts.RotationInterval = 5 * time.Second
	}
	if opts.LabelInterval <= 0 {
		opts.LabelInterval = time.Minute
	}

	hidden := make(map[string]bool, len(opts.HiddenRooms))
	for _, room := range opts.HiddenRooms {
		hidden[room] = true
	}

	return &Kiosk{
		syncer:   syncer,
		state:    state,
		surface:  surface,
		labels:   labels.NewUpdater(surface, opts.Location),
		clock:    opts.Clock,
		loc:      opts.Location,
		rotate:   opts.RotationInterval,
		relabel:  opts.LabelInterval,
		hidden:   hidden,
		metrics:  opts.Metrics,
		commands: make(chan command),
		requests: make(chan struct{}, 1),
		results:  make(chan service.Outcome, 1),
		done:     make(chan struct{}),
	}
}

// Run bootstraps the display and serves ticks and commands until ctx is done
func (k *Kiosk) Run(ctx context.Context) error {
	defer close(k.done)
	defer k.wg.Wait()
	defer k.stopRotation()

	k.bootstrap(ctx)

	labelTicker := k.clock.NewTicker(k.relabel)
	defer labelTicker.Stop()

	for {
		var rotationC <-chan time.Time
		if k.rotationTicker != nil {
			rotationC = k.rotationTicker.C
		}

		select {
		case <-ctx.Done():
			return nil

		case cmd := <-k.commands:
			cmd.reply <- k.apply(ctx, cmd.room)

		case <-k.requests:
			k.startSync(ctx)

		case outcome := <-k.results:
			k.syncing = false
			k.applyOutcome(ctx, outcome)

		case <-rotationC:
			k.advance()

		case <-labelTicker.C:
			k.labels.Refresh(k.clock.Now())
		}
	}
}

// RequestSync asks the loop to fetch the schedule. Requests made while a
// fetch is pending are merged into it.
func (k *Kiosk) RequestSync() {
	select {
	case k.requests <- struct{}{}:
	default:
	}
}

// ShowRoom pins the display to room
func (k *Kiosk) ShowRoom(ctx context.Context, room string) error {
	return k.send(ctx, room)
}

// ShowOverview starts rotating through all rooms from the first one
func (k *Kiosk) ShowOverview(ctx context.Context) error {
	return k.send(ctx, models.Overview)
}

// Done is closed when Run has returned
func (k *Kiosk) Done() <-chan struct{} {
	return k.done
}

// Status returns the state as of the last loop iteration
func (k *Kiosk) Status() Status {
	k.mu.RLock()
	defer k.mu.RUnlock()
	status := k.status
	status.Rooms = slices.Clone(status.Rooms)
	return status
}

// Ready reports whether a schedule is available
func (k *Kiosk) Ready() bool {
	return k.Status().HasSchedule
}

// Selection returns the current and next talk of a displayed room at the current time
func (k *Kiosk) Selection(room string) (models.Selection, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if !slices.Contains(k.status.Rooms, room) {
		return models.Selection{}, ErrUnknownRoom
	}
	return selector.SelectRoom(k.snapshot, room, k.clock.Now(), k.loc), nil
}

func (k *Kiosk) send(ctx context.Context, room string) error {
	cmd := command{room: room, reply: make(chan error, 1)}
	select {
	case k.commands <- cmd:
	case <-k.done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-cmd.reply
}

// bootstrap restores the stored schedule and mode, then syncs once
func (k *Kiosk) bootstrap(ctx context.Context) {
	if sched, ok := k.syncer.Current(ctx); ok {
		k.setSchedule(sched)
	}
	k.displayState = k.state.LoadDisplayState(ctx)

	outcome := k.syncer.Sync(ctx)
	if outcome.Changed {
		k.setSchedule(outcome.Schedule)
	}

	k.surface.RenderRoomList(k.rooms)

	room := k.displayState.SelectedRoom
	switch {
	case room == "" || k.displayState.IsOverview():
		k.enterOverview()
	case slices.Contains(k.rooms, room):
		k.enterRoom(room)
	case k.hasSchedule:
		log.Printf("Stored room %s is not in the schedule, showing overview", utils.SanitizeLogString(room))
		k.switchToOverview(ctx)
	default:
		// Keep the stored choice until a schedule can confirm or reject it
		k.enterOverview()
	}
	k.render()
}

func (k *Kiosk) apply(ctx context.Context, room string) error {
	if room == models.Overview {
		k.enterOverview()
	} else {
		if !slices.Contains(k.rooms, room) {
			return ErrUnknownRoom
		}
		k.enterRoom(room)
	}

	k.displayState = models.DisplayState{SelectedRoom: room}
	k.state.SaveDisplayState(ctx, k.displayState)
	k.render()
	return nil
}

func (k *Kiosk) startSync(ctx context.Context) {
	if k.syncing {
		return
	}
	k.syncing = true

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		outcome := k.syncer.Sync(ctx)
		select {
		case k.results <- outcome:
		case <-ctx.Done():
		}
	}()
}

func (k *Kiosk) applyOutcome(ctx context.Context, outcome service.Outcome) {
	if !outcome.Changed {
		// Talks move on even when the schedule does not
		k.renderIfStale()
		return
	}

	before := k.rooms
	k.setSchedule(outcome.Schedule)
	if !slices.Equal(before, k.rooms) {
		k.surface.RenderRoomList(k.rooms)
	}

	switch k.rotation.Mode() {
	case ShowingRoom:
		if room, _ := k.rotation.Current(k.rooms); !slices.Contains(k.rooms, room) {
			log.Printf("Room %s is gone from the schedule, showing overview", utils.SanitizeLogString(room))
			k.switchToOverview(ctx)
		}
	case Rotating:
		// A room restored before any schedule was available
		if room := k.displayState.SelectedRoom; room != "" && !k.displayState.IsOverview() {
			if slices.Contains(k.rooms, room) {
				k.enterRoom(room)
			} else {
				log.Printf("Stored room %s is not in the schedule, showing overview", utils.SanitizeLogString(room))
				k.switchToOverview(ctx)
			}
		}
	}
	k.render()
}

func (k *Kiosk) setSchedule(sched models.Schedule) {
	k.schedule = sched
	k.hasSchedule = !sched.IsEmpty()
	k.rooms = k.rooms[:0:0]
	for _, room := range sched.RoomNames() {
		if !k.hidden[room] {
			k.rooms = append(k.rooms, room)
		}
	}
	k.rotation.Fit(len(k.rooms))
}

func (k *Kiosk) enterOverview() {
	k.stopRotation()
	k.rotation.StartOverview()
	k.rotationTicker = k.clock.NewTicker(k.rotate)
}

// switchToOverview starts the overview and records it as the selected mode
func (k *Kiosk) switchToOverview(ctx context.Context) {
	k.enterOverview()
	k.displayState = models.DisplayState{SelectedRoom: models.Overview}
	k.state.SaveDisplayState(ctx, k.displayState)
}

func (k *Kiosk) enterRoom(room string) {
	k.stopRotation()
	k.rotation.ShowRoom(room)
}

func (k *Kiosk) stopRotation() {
	if k.rotationTicker != nil {
		k.rotationTicker.Stop()
		k.rotationTicker = nil
	}
}

func (k *Kiosk) advance() {
	if _, ok := k.rotation.Advance(k.rooms); !ok {
		return
	}
	k.metrics.RotationAdvanced()
	k.render()
}

// render draws the room the rotation points at, or the fallback view
func (k *Kiosk) render() {
	defer k.publish()

	room, ok := k.rotation.Current(k.rooms)
	if !k.hasSchedule || !ok {
		k.shown = ""
		k.shownSelection = models.Selection{}
		k.surface.RenderFallback()
		return
	}

	now := k.clock.Now()
	sel := selector.SelectRoom(k.schedule, room, now, k.loc)

	k.surface.Clear()
	k.surface.RenderHeading(room)
	k.surface.RenderCard(sel.Current, true)
	k.surface.RenderCard(sel.Next, false)
	k.surface.Flush()
	k.labels.Refresh(now)

	k.shown = room
	k.shownSelection = sel
}

func (k *Kiosk) renderIfStale() {
	room, ok := k.rotation.Current(k.rooms)
	if !k.hasSchedule || !ok {
		if k.shown != "" {
			k.render()
		}
		return
	}
	if room != k.shown || selector.SelectRoom(k.schedule, room, k.clock.Now(), k.loc) != k.shownSelection {
		k.render()
	}
}

func (k *Kiosk) publish() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.status = Status{
		Rooms:       slices.Clone(k.rooms),
		Display:     k.displayState,
		Mode:        k.rotation.Mode(),
		Showing:     k.shown,
		HasSchedule: k.hasSchedule,
	}
	// Schedules are replaced, never modified, so sharing is safe
	k.snapshot = k.schedule
}
