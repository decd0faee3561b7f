package models

import "time"

// TimeWindow is the span of a talk from its start to its end instant
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether now falls inside the window, both ends inclusive.
// All instants are compared at minute resolution in loc.
func (w TimeWindow) Contains(now time.Time, loc *time.Location) bool {
	n := TruncateToMinute(now, loc)
	return !TruncateToMinute(w.Start, loc).After(n) && !n.After(TruncateToMinute(w.End, loc))
}

// StartsAfter reports whether the window starts strictly after now
func (w TimeWindow) StartsAfter(now time.Time, loc *time.Location) bool {
	return TruncateToMinute(w.Start, loc).After(TruncateToMinute(now, loc))
}

// TruncateToMinute drops seconds and below from t as seen in loc.
// A nil loc means UTC.
func TruncateToMinute(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
