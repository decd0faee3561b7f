package models

import "time"

// Talk is a single normalized talk in a room
type Talk struct {
	Speaker  string    `json:"speaker"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// Messages shown when no real talk qualifies
const (
	FallbackCurrentTitle = "No talk is running right now"
	FallbackNextTitle    = "Nothing more today"
)

// Fallback talks have zero time fields and a fixed title
var (
	FallbackCurrent = Talk{Title: FallbackCurrentTitle}
	FallbackNext    = Talk{Title: FallbackNextTitle}
)

// Window returns the time window the talk occupies
func (t Talk) Window() TimeWindow {
	return TimeWindow{Start: t.Start, End: t.End}
}

// IsFallback returns true for the sentinel talks that stand in for "nothing"
func (t Talk) IsFallback() bool {
	return t.Start.IsZero() && t.End.IsZero()
}

// Selection is the pair of talks shown for a room
type Selection struct {
	Current Talk `json:"current"`
	Next    Talk `json:"next"`
}
