// Package selector picks the talk running in a room and the one after it
package selector

import (
	"time"

	"github.com/navikt/ztalks/internal/models"
)

// Select returns the current and next talk of a room at now.
//
// The current talk is the first talk, in list order, whose window contains
// now. The next talk is the first talk positioned after the current one whose
// start lies strictly after now; without a current talk the whole list is
// searched. Comparisons use minute resolution in loc. When nothing qualifies
// the fallback talks are returned.
func Select(talks []models.Talk, now time.Time, loc *time.Location) models.Selection {
	selection := models.Selection{
		Current: models.FallbackCurrent,
		Next:    models.FallbackNext,
	}

	currentIndex := -1
	for i, talk := range talks {
		if talk.Window().Contains(now, loc) {
			currentIndex = i
			selection.Current = talk
			break
		}
	}

	for i := currentIndex + 1; i < len(talks); i++ {
		if talks[i].Window().StartsAfter(now, loc) {
			selection.Next = talks[i]
			break
		}
	}

	return selection
}

// SelectRoom selects talks for a room of the schedule.
// Unknown rooms yield both fallback talks.
func SelectRoom(schedule models.Schedule, room string, now time.Time, loc *time.Location) models.Selection {
	talks, _ := schedule.Talks(room)
	return Select(talks, now, loc)
}
