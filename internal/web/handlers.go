package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler manages web UI requests
type Handler struct {
	board     *Board
	hub       *EventHub
	templates *template.Template
	title     string
}

// NewHandler creates a new web UI handler. Times are shown in loc.
func NewHandler(board *Board, hub *EventHub, title string, loc *time.Location) (*Handler, error) {
	if loc == nil {
		loc = time.UTC
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return formatTime(t, loc)
		},
		"cardHeader": cardHeader,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		board:     board,
		hub:       hub,
		templates: tmpl,
		title:     title,
	}, nil
}

// formatTime is a template helper function to format time
func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format("15:04")
}

func cardHeader(isCurrent bool) string {
	if isCurrent {
		return "Current Talk"
	}
	return "Next Talk"
}

// SetupRoutes registers web UI routes on the given mux
func (h *Handler) SetupRoutes(mux *http.ServeMux) {
	mux.Handle("/events", h.hub)
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/partial/board", h.HandlePartialBoard)
}

// handleIndex renders the full kiosk page
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	viewModel := struct {
		Title string
		Board BoardView
	}{
		Title: h.title,
		Board: h.board.View(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "layout.html", viewModel); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// HandlePartialBoard renders just the board for HTMX updates
func (h *Handler) HandlePartialBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "board", h.board.View()); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render board", http.StatusInternalServerError)
	}
}

// Shutdown closes the SSE connections
func (h *Handler) Shutdown() {
	h.hub.Shutdown()
}
