package status

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dgiibot/models"
)

// MockStatusUseCase is a mock implementation of the StatusUseCase
type MockStatusUseCase struct {
	mock.Mock
}

func (m *MockStatusUseCase) ProcessStatusCommand(
	ctx context.Context,
	command models.StatusCommand,
	ack models.AckFunc,
) models.Reply {
	args := m.Called(ctx, command, ack)
	return args.Get(0).(models.Reply)
}
