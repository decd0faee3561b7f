package web

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent reads one event block from an SSE stream
func readEvent(t *testing.T, scanner *bufio.Scanner) map[string]string {
	fields := map[string]string{}
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if len(fields) > 0 {
				return fields
			}
			continue
		}
		if name, value, ok := strings.Cut(line, ": "); ok {
			fields[name] = value
		}
	}
	require.NoError(t, scanner.Err())
	return fields
}

func TestEventHubDeliversUpdates(t *testing.T) {
	hub := NewEventHub()
	server := httptest.NewServer(hub)
	defer server.Close()
	defer hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)
	// Browsers send the last seen id on reconnect; it must not be rejected
	req.Header.Set("Last-Event-ID", uuid.NewString())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no", resp.Header.Get("X-Accel-Buffering"))

	assert.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, time.Millisecond)

	// Subscription completes asynchronously, so keep publishing until the event arrives
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				hub.NotifyUpdate()
			}
		}
	}()

	event := readEvent(t, bufio.NewScanner(resp.Body))
	assert.Equal(t, "update", event["event"])
	assert.Equal(t, "Update available", event["data"])
	_, err = uuid.Parse(event["id"])
	assert.NoError(t, err)
}

func TestEventHubPreflight(t *testing.T) {
	hub := NewEventHub()
	defer hub.Shutdown()

	recorder := httptest.NewRecorder()
	hub.ServeHTTP(recorder, httptest.NewRequest(http.MethodOptions, "/events", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "GET, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
}

func TestBoardNotifiesHub(t *testing.T) {
	hub := NewEventHub()
	server := httptest.NewServer(hub)
	defer server.Close()
	defer hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	board := NewBoard(hub)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(10 * time.Millisecond):
				board.RenderRoomList([]string{"Raum A"})
			}
		}
	}()

	event := readEvent(t, bufio.NewScanner(resp.Body))
	assert.Equal(t, "update", event["event"])
}
