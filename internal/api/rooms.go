package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/utils"
)

// RoomsResponse lists the rooms available for display
type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// TalkResponse is a talk as returned by the API. Fallback talks have no times.
type TalkResponse struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Speaker  string     `json:"speaker,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Fallback bool       `json:"fallback"`
}

// SelectionResponse is the current and next talk of a room
type SelectionResponse struct {
	Room    string       `json:"room"`
	Current TalkResponse `json:"current"`
	Next    TalkResponse `json:"next"`
}

// RoomHandler handles HTTP requests for rooms
type RoomHandler struct {
	kiosk KioskController
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(k KioskController) *RoomHandler {
	return &RoomHandler{kiosk: k}
}

// ServeHTTP handles GET /api/rooms and GET /api/rooms/{room}
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	room := strings.TrimPrefix(r.URL.Path, "/api/rooms")
	room = strings.Trim(room, "/")

	if room == "" {
		h.listRooms(w)
		return
	}
	h.getRoom(w, room)
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter) {
	rooms := h.kiosk.Status().Rooms
	if rooms == nil {
		rooms = []string{}
	}
	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: rooms})
}

// getRoom handles GET /api/rooms/{room}
func (h *RoomHandler) getRoom(w http.ResponseWriter, room string) {
	sel, err := h.kiosk.Selection(room)
	if errors.Is(err, kiosk.ErrUnknownRoom) {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error selecting talks for room %s: %v", utils.SanitizeLogString(room), err)
		http.Error(w, "Error selecting talks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SelectionResponse{
		Room:    room,
		Current: newTalkResponse(sel.Current),
		Next:    newTalkResponse(sel.Next),
	})
}

func newTalkResponse(t models.Talk) TalkResponse {
	if t.IsFallback() {
		return TalkResponse{Title: t.Title, Fallback: true}
	}
	start, end := t.Start, t.End
	return TalkResponse{
		Title:    t.Title,
		Subtitle: t.Subtitle,
		Speaker:  t.Speaker,
		Start:    &start,
		End:      &end,
	}
}
