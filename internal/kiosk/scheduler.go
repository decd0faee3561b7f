package kiosk

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// NewSyncScheduler returns a cron scheduler that requests a sync of k on
// spec, for example "@every 5s" or "*/1 * * * *". It is not started.
func NewSyncScheduler(spec string, loc *time.Location, k *Kiosk) (*cron.Cron, error) {
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, k.RequestSync); err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}
	return c, nil
}
