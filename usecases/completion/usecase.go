package completion

import (
	"context"

	"github.com/samber/mo"

	"dgiibot/clients"
	"dgiibot/core/log"
	"dgiibot/models"
)

const (
	// PromptTemplate is prepended to every question sent to the completion endpoint
	PromptTemplate = "Eres un asistente experto en la DGII. Responde siempre en español. Pregunta: "

	ReplyNotFound        = "Respuesta no encontrada."
	ReplyProcessingError = "Error al procesar la respuesta de la API."
	ReplyTransportError  = "Oops! Something went wrong."
)

// CompletionUseCase relays chat messages to the completion endpoint
type CompletionUseCase struct {
	completionClient clients.CompletionClient
	requireMention   bool
}

// NewCompletionUseCase creates a relay. With requireMention set, only messages that
// mention the bot are relayed.
func NewCompletionUseCase(completionClient clients.CompletionClient, requireMention bool) *CompletionUseCase {
	return &CompletionUseCase{
		completionClient: completionClient,
		requireMention:   requireMention,
	}
}

// BuildRequest wraps the message text in the fixed prompt
func BuildRequest(text string) models.CompletionRequest {
	return models.CompletionRequest{UserInput: PromptTemplate + text}
}

// ProcessMessageEvent returns the reply for a message, or None when the message is ignored
func (u *CompletionUseCase) ProcessMessageEvent(
	ctx context.Context,
	event models.MessageEvent,
) mo.Option[models.Reply] {
	logger := log.With("event_id", event.EventID, "channel_id", event.ChannelID)

	if event.IsFromBot {
		return mo.None[models.Reply]()
	}
	if u.requireMention && !event.MentionsBot {
		logger.Debug("🔍 Bot not mentioned - ignoring message", "author_id", event.AuthorID)
		return mo.None[models.Reply]()
	}

	logger.Info("📨 Relaying message to completion endpoint",
		"author", event.AuthorName, "content", event.Content)

	raw, err := u.completionClient.Complete(ctx, BuildRequest(event.Content))
	if err != nil {
		logger.Error("❌ Completion request failed", "error", err)
		return mo.Some(models.Reply{Content: ReplyTransportError})
	}
	logger.Debug("📥 Response from completion endpoint", "response", string(raw))

	result, err := UnwrapCompletion(raw)
	if err != nil {
		logger.Error("❌ Failed to unwrap completion response", "error", err)
		return mo.Some(models.Reply{Content: ReplyForError(err)})
	}

	logger.Info("✅ Completion relayed", "reply_length", len(result))
	return mo.Some(models.Reply{Content: result})
}
