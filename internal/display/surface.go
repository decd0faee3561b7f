// Package display defines the surface the kiosk renders to
package display

import (
	"time"

	"github.com/navikt/ztalks/internal/models"
)

// Card ids
const (
	CurrentCardID = "current"
	NextCardID    = "next"
)

// Card is a rendered talk
type Card struct {
	ID        string
	Talk      models.Talk
	IsCurrent bool
	Label     string
}

// Start is the start instant attached to the card. It is zero for fallback cards.
func (c Card) Start() time.Time {
	return c.Talk.Start
}

// Surface is what the kiosk draws on. A render pass is Clear, RenderHeading,
// RenderCard for each card and Flush; nothing is visible before Flush.
type Surface interface {
	// RenderFallback shows the "no schedule" view
	RenderFallback()
	// RenderRoomList replaces the room buttons
	RenderRoomList(rooms []string)
	RenderHeading(room string)
	RenderCard(talk models.Talk, isCurrent bool)
	Clear()
	Flush()
	// Cards returns the cards of the last flushed pass
	Cards() []Card
	// SetLabel updates the live label of the card with the given id
	SetLabel(id, label string)
}

// CardID returns the id used for a current or next card
func CardID(isCurrent bool) string {
	if isCurrent {
		return CurrentCardID
	}
	return NextCardID
}
