package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/navikt/ztalks/internal/api"
	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	mockKiosk := new(MockKiosk)
	mockKiosk.On("Ready").Return(true)
	mockKiosk.On("Status").Return(kiosk.Status{Rooms: []string{"Raum A"}})

	mux := api.SetupRoutes(mockKiosk, metrics.New().Handler())

	testCases := []struct {
		path         string
		expectedCode int
	}{
		{path: "/health/live", expectedCode: http.StatusOK},
		{path: "/health/ready", expectedCode: http.StatusOK},
		{path: "/api/rooms", expectedCode: http.StatusOK},
		{path: "/api/display", expectedCode: http.StatusOK},
		{path: "/metrics", expectedCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestSetupRoutesWithoutMetrics(t *testing.T) {
	mux := api.SetupRoutes(new(MockKiosk), nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
