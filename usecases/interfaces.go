package usecases

import (
	"context"

	"github.com/samber/mo"

	"dgiibot/models"
)

// CompletionUseCaseInterface defines the interface for the completion relay
type CompletionUseCaseInterface interface {
	ProcessMessageEvent(ctx context.Context, event models.MessageEvent) mo.Option[models.Reply]
}

// StatusUseCaseInterface defines the interface for /dgii_status handling
type StatusUseCaseInterface interface {
	ProcessStatusCommand(ctx context.Context, command models.StatusCommand, ack models.AckFunc) models.Reply
}
