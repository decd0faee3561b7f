// Package labels keeps the relative time labels on the displayed cards current
package labels

import (
	"fmt"
	"time"

	"github.com/navikt/ztalks/internal/display"
	"github.com/navikt/ztalks/internal/models"
)

// Elapsed returns the label of a running talk
func Elapsed(start, now time.Time, loc *time.Location) string {
	minutes := minutesBetween(start, now, loc)
	if minutes <= 0 {
		return "started just now"
	}
	return fmt.Sprintf("started %d min ago", minutes)
}

// Upcoming returns the label of the next talk
func Upcoming(start, now time.Time, loc *time.Location) string {
	at := models.TruncateToMinute(start, loc).Format("15:04")
	minutes := minutesBetween(now, start, loc)
	if minutes <= 0 {
		return fmt.Sprintf("starts at %s (now)", at)
	}
	return fmt.Sprintf("starts at %s (in %d min)", at, minutes)
}

// minutesBetween returns the whole minutes from a to b at minute resolution
func minutesBetween(a, b time.Time, loc *time.Location) int {
	return int(models.TruncateToMinute(b, loc).Sub(models.TruncateToMinute(a, loc)) / time.Minute)
}

// Updater rewrites the labels of the cards on a surface. It never changes
// which talks are shown.
type Updater struct {
	surface display.Surface
	loc     *time.Location
}

// NewUpdater creates an updater for surface. Times are shown in loc.
func NewUpdater(surface display.Surface, loc *time.Location) *Updater {
	if loc == nil {
		loc = time.UTC
	}
	return &Updater{surface: surface, loc: loc}
}

// Refresh recomputes the label of every displayed card for now.
// Fallback cards carry no label.
func (u *Updater) Refresh(now time.Time) {
	for _, card := range u.surface.Cards() {
		if card.Talk.IsFallback() {
			continue
		}

		var label string
		if card.IsCurrent {
			label = Elapsed(card.Start(), now, u.loc)
		} else {
			label = Upcoming(card.Start(), now, u.loc)
		}

		if label != card.Label {
			u.surface.SetLabel(card.ID, label)
		}
	}
}
