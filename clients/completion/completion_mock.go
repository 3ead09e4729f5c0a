package completion

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dgiibot/models"
)

// MockCompletionClient implements the clients.CompletionClient interface for testing
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, request models.CompletionRequest) ([]byte, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
