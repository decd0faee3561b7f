package api

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/utils"
)

// DisplayRequest switches the display to a room or to "overview"
type DisplayRequest struct {
	Room string `json:"room"`
}

// DisplayResponse describes what the display is showing
type DisplayResponse struct {
	SelectedRoom string `json:"selectedRoom"`
	Mode         string `json:"mode"`
	Showing      string `json:"showing,omitempty"`
}

// DisplayHandler handles GET and POST /api/display
type DisplayHandler struct {
	kiosk KioskController
}

// NewDisplayHandler creates a new display handler
func NewDisplayHandler(k KioskController) *DisplayHandler {
	return &DisplayHandler{kiosk: k}
}

// ServeHTTP routes display requests by method
func (h *DisplayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeStatus(w)
	case http.MethodPost:
		h.selectRoom(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// selectRoom accepts a JSON body or the form posted by the room buttons
func (h *DisplayHandler) selectRoom(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeDisplayRequest(r)
	if err != nil {
		log.Printf("Error decoding display request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	room := strings.TrimSpace(req.Room)
	if room == "" {
		http.Error(w, "Room is required", http.StatusBadRequest)
		return
	}

	if room == models.Overview {
		err = h.kiosk.ShowOverview(r.Context())
	} else {
		err = h.kiosk.ShowRoom(r.Context(), room)
	}

	switch {
	case errors.Is(err, kiosk.ErrUnknownRoom):
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	case err != nil:
		log.Printf("Error switching display to %s: %v", utils.SanitizeLogString(room), err)
		http.Error(w, "Display is not available", http.StatusServiceUnavailable)
		return
	}

	// Plain form posts without htmx go back to the board
	if r.Header.Get("HX-Request") == "" && isForm(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.writeStatus(w)
}

func (h *DisplayHandler) writeStatus(w http.ResponseWriter) {
	status := h.kiosk.Status()
	writeJSON(w, http.StatusOK, DisplayResponse{
		SelectedRoom: status.Display.SelectedRoom,
		Mode:         status.Mode.String(),
		Showing:      status.Showing,
	})
}

func decodeDisplayRequest(r *http.Request) (DisplayRequest, error) {
	var req DisplayRequest
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Room = r.PostForm.Get("room")
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}
