package api

import (
	"context"

	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/models"
)

// KioskController defines the kiosk operations needed by API handlers
type KioskController interface {
	Status() kiosk.Status
	Ready() bool
	Selection(room string) (models.Selection, error)
	ShowRoom(ctx context.Context, room string) error
	ShowOverview(ctx context.Context) error
}
