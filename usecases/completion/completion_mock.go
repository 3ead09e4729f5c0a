package completion

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"dgiibot/models"
)

// MockCompletionUseCase is a mock implementation of the CompletionUseCase
type MockCompletionUseCase struct {
	mock.Mock
}

func (m *MockCompletionUseCase) ProcessMessageEvent(
	ctx context.Context,
	event models.MessageEvent,
) mo.Option[models.Reply] {
	args := m.Called(ctx, event)
	return args.Get(0).(mo.Option[models.Reply])
}
