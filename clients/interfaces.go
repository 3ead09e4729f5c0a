package clients

import (
	"context"
	"encoding/json"

	"github.com/bwmarrin/discordgo"

	"dgiibot/models"
)

// CompletionClient posts prompts to the completion endpoint
type CompletionClient interface {
	// Complete returns the raw response document. Non-2xx responses are *APIError.
	Complete(ctx context.Context, request models.CompletionRequest) ([]byte, error)
}

// DGIIStatusClient queries the DGII EstatusServicios API
type DGIIStatusClient interface {
	IsConfigured() bool
	GetServicesStatus(ctx context.Context) (json.RawMessage, error)
	GetMaintenanceWindows(ctx context.Context) (json.RawMessage, error)
	CheckEnvironmentStatus(ctx context.Context, environment models.StatusEnvironment) (json.RawMessage, error)
}

// DiscordClient defines the Discord operations the bot performs
type DiscordClient interface {
	SendReply(ctx context.Context, channelID, guildID, messageID, content string) error
	DeferInteraction(ctx context.Context, interaction *discordgo.Interaction) error
	RespondInteraction(ctx context.Context, interaction *discordgo.Interaction, content string) error
	EditInteractionResponse(ctx context.Context, interaction *discordgo.Interaction, content string) error
	RegisterGuildCommands(
		ctx context.Context,
		appID, guildID string,
		commands []*discordgo.ApplicationCommand,
	) error
}
