package display_test

import (
	"testing"
	"time"

	"github.com/navikt/ztalks/internal/display"
	"github.com/navikt/ztalks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRenderPass(t *testing.T) {
	start := time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC)
	talk := models.Talk{Title: "Opening", Start: start, End: start.Add(30 * time.Minute)}

	var surface display.Surface = display.NewRecorder()
	rec := surface.(*display.Recorder)

	rec.RenderRoomList([]string{"Raum A", "Raum B"})
	rec.Clear()
	rec.RenderHeading("Raum A")
	rec.RenderCard(talk, true)
	rec.RenderCard(models.FallbackNext, false)

	assert.Empty(t, rec.Cards(), "cards are not visible before flush")
	rec.Flush()

	cards := rec.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, display.CurrentCardID, cards[0].ID)
	assert.Equal(t, start, cards[0].Start())
	assert.True(t, cards[1].Start().IsZero())

	rec.SetLabel(display.CurrentCardID, "started 5 min ago")
	assert.Equal(t, "started 5 min ago", rec.Cards()[0].Label)

	assert.Equal(t, []string{
		"rooms:Raum A,Raum B",
		"clear",
		"heading:Raum A",
		"card:current:Opening",
		"card:next:" + models.FallbackNextTitle,
		"flush",
		"label:current:started 5 min ago",
	}, rec.Calls())
	assert.Equal(t, "Raum A", rec.Heading())
	assert.Equal(t, 1, rec.Renders())
}

func TestRecorderFallback(t *testing.T) {
	rec := display.NewRecorder()
	rec.RenderHeading("Raum A")
	rec.RenderCard(models.FallbackCurrent, true)
	rec.Flush()

	rec.RenderFallback()
	assert.True(t, rec.ShowsFallback())
	assert.Empty(t, rec.Cards())
	assert.Empty(t, rec.Heading())

	rec.Reset()
	assert.Empty(t, rec.Calls())
	assert.True(t, rec.ShowsFallback())
}
