package dgii

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"dgiibot/models"
)

// MockStatusClient implements the clients.DGIIStatusClient interface for testing
type MockStatusClient struct {
	mock.Mock
}

func (m *MockStatusClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStatusClient) GetServicesStatus(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockStatusClient) GetMaintenanceWindows(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockStatusClient) CheckEnvironmentStatus(
	ctx context.Context,
	environment models.StatusEnvironment,
) (json.RawMessage, error) {
	args := m.Called(ctx, environment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
