package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/navikt/ztalks/internal/models"
)

// Recorder is an in-memory Surface that records every call
type Recorder struct {
	mu       sync.Mutex
	calls    []string
	rooms    []string
	heading  string
	pending  []Card
	cards    []Card
	fallback bool
	flushes  int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RenderFallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "fallback")
	r.fallback = true
	r.heading = ""
	r.pending = nil
	r.cards = nil
	r.flushes++
}

func (r *Recorder) RenderRoomList(rooms []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "rooms:"+strings.Join(rooms, ","))
	r.rooms = append([]string(nil), rooms...)
}

func (r *Recorder) RenderHeading(room string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "heading:"+room)
	r.heading = room
}

func (r *Recorder) RenderCard(talk models.Talk, isCurrent bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := CardID(isCurrent)
	r.calls = append(r.calls, fmt.Sprintf("card:%s:%s", id, talk.Title))
	r.pending = append(r.pending, Card{ID: id, Talk: talk, IsCurrent: isCurrent})
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "clear")
	r.heading = ""
	r.pending = nil
}

func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "flush")
	r.fallback = false
	r.cards = r.pending
	r.pending = nil
	r.flushes++
}

func (r *Recorder) Cards() []Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Card(nil), r.cards...)
}

func (r *Recorder) SetLabel(id, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("label:%s:%s", id, label))
	for i := range r.cards {
		if r.cards[i].ID == id {
			r.cards[i].Label = label
		}
	}
}

// Calls returns the recorded calls in order
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Reset forgets the recorded calls but keeps the displayed state
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Rooms returns the last rendered room list
func (r *Recorder) Rooms() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.rooms...)
}

// Heading returns the heading of the displayed view
func (r *Recorder) Heading() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.heading
}

// ShowsFallback reports whether the fallback view is displayed
func (r *Recorder) ShowsFallback() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallback
}

// Renders returns the number of completed render passes
func (r *Recorder) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}
