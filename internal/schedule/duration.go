package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DurationError describes a talk duration that is not of the form H(H):MM
type DurationError struct {
	Input  string
	Reason string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// ParseDuration parses a pretalx duration such as "01:30" into a time.Duration.
// The first component is hours and the second minutes; both must be
// non-negative integers and minutes must be below 60.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, &DurationError{Input: s, Reason: "expected hours:minutes"}
	}

	hours, err := parseComponent(parts[0])
	if err != nil {
		return 0, &DurationError{Input: s, Reason: "hours " + err.Error()}
	}
	minutes, err := parseComponent(parts[1])
	if err != nil {
		return 0, &DurationError{Input: s, Reason: "minutes " + err.Error()}
	}
	if minutes >= 60 {
		return 0, &DurationError{Input: s, Reason: "minutes out of range"}
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing")
	}
	// Atoi would accept a leading sign
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a non-negative number")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	return n, nil
}
