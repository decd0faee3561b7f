package api_test

import (
	"context"

	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockKiosk is a mock implementation of KioskController
type MockKiosk struct {
	mock.Mock
}

func (m *MockKiosk) Status() kiosk.Status {
	args := m.Called()
	return args.Get(0).(kiosk.Status)
}

func (m *MockKiosk) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockKiosk) Selection(room string) (models.Selection, error) {
	args := m.Called(room)
	return args.Get(0).(models.Selection), args.Error(1)
}

func (m *MockKiosk) ShowRoom(ctx context.Context, room string) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockKiosk) ShowOverview(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
