package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navikt/ztalks/internal/api"
	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRooms(t *testing.T) {
	mockKiosk := new(MockKiosk)
	mockKiosk.On("Status").Return(kiosk.Status{Rooms: []string{"Raum A", "Raum B"}})

	rr := httptest.NewRecorder()
	api.NewRoomHandler(mockKiosk).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"rooms": ["Raum A", "Raum B"]}`, rr.Body.String())
}

func TestListRoomsWithoutSchedule(t *testing.T) {
	mockKiosk := new(MockKiosk)
	mockKiosk.On("Status").Return(kiosk.Status{})

	rr := httptest.NewRecorder()
	api.NewRoomHandler(mockKiosk).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rooms/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"rooms": []}`, rr.Body.String())
}

func TestGetRoom(t *testing.T) {
	start := time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC)
	mockKiosk := new(MockKiosk)
	mockKiosk.On("Selection", "Raum A").Return(models.Selection{
		Current: models.Talk{Title: "Opening", Speaker: "Ada", Start: start, End: start.Add(30 * time.Minute)},
		Next:    models.FallbackNext,
	}, nil)

	rr := httptest.NewRecorder()
	api.NewRoomHandler(mockKiosk).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rooms/Raum%20A", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var response api.SelectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Raum A", response.Room)
	assert.Equal(t, "Opening", response.Current.Title)
	assert.False(t, response.Current.Fallback)
	require.NotNil(t, response.Current.Start)
	assert.True(t, start.Equal(*response.Current.Start))
	assert.True(t, response.Next.Fallback)
	assert.Equal(t, models.FallbackNextTitle, response.Next.Title)
	assert.Nil(t, response.Next.Start)

	mockKiosk.AssertExpectations(t)
}

func TestGetUnknownRoom(t *testing.T) {
	mockKiosk := new(MockKiosk)
	mockKiosk.On("Selection", "Raum Q").Return(models.Selection{}, kiosk.ErrUnknownRoom)

	rr := httptest.NewRecorder()
	api.NewRoomHandler(mockKiosk).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rooms/Raum%20Q", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoomsMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	api.NewRoomHandler(new(MockKiosk)).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/rooms/Raum%20A", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}
