package web

import (
	"slices"
	"sync"

	"github.com/navikt/ztalks/internal/display"
	"github.com/navikt/ztalks/internal/models"
)

// Board is the display surface shown in the browser. Completed render passes
// and label changes are announced on the event hub.
type Board struct {
	mu       sync.RWMutex
	rooms    []string
	heading  string
	next     string
	pending  []display.Card
	cards    []display.Card
	fallback bool
	hub      *EventHub
}

// BoardView is a snapshot of the board for templates
type BoardView struct {
	Rooms    []string
	Room     string
	Cards    []display.Card
	Fallback bool
}

// NewBoard creates a board that starts out on the fallback view
func NewBoard(hub *EventHub) *Board {
	return &Board{hub: hub, fallback: true}
}

func (b *Board) RenderFallback() {
	b.mu.Lock()
	b.fallback = true
	b.heading = ""
	b.next = ""
	b.pending = nil
	b.cards = nil
	b.mu.Unlock()
	b.notify()
}

func (b *Board) RenderRoomList(rooms []string) {
	b.mu.Lock()
	b.rooms = slices.Clone(rooms)
	b.mu.Unlock()
	b.notify()
}

func (b *Board) RenderHeading(room string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next = room
}

func (b *Board) RenderCard(talk models.Talk, isCurrent bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, display.Card{
		ID:        display.CardID(isCurrent),
		Talk:      talk,
		IsCurrent: isCurrent,
	})
}

func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next = ""
	b.pending = nil
}

func (b *Board) Flush() {
	b.mu.Lock()
	b.fallback = false
	b.heading = b.next
	b.cards = b.pending
	b.pending = nil
	b.mu.Unlock()
	b.notify()
}

func (b *Board) Cards() []display.Card {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.cards)
}

func (b *Board) SetLabel(id, label string) {
	b.mu.Lock()
	changed := false
	for i := range b.cards {
		if b.cards[i].ID == id && b.cards[i].Label != label {
			b.cards[i].Label = label
			changed = true
		}
	}
	b.mu.Unlock()

	if changed {
		b.notify()
	}
}

// View returns what the browser should show
func (b *Board) View() BoardView {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return BoardView{
		Rooms:    slices.Clone(b.rooms),
		Room:     b.heading,
		Cards:    slices.Clone(b.cards),
		Fallback: b.fallback,
	}
}

func (b *Board) notify() {
	if b.hub != nil {
		b.hub.NotifyUpdate()
	}
}
