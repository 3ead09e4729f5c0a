package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"dgiibot/clients"
	"dgiibot/utils"
)

// DiscordClient implements the clients.DiscordClient interface on top of a discordgo session
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a Discord client that sends through the given session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// SendReply posts content as a reply to the referenced message
func (c *DiscordClient) SendReply(ctx context.Context, channelID, guildID, messageID, content string) error {
	reference := &discordgo.MessageReference{
		MessageID: messageID,
		ChannelID: channelID,
		GuildID:   guildID,
	}

	_, err := c.session.ChannelMessageSendReply(
		channelID,
		utils.TruncateMessage(content),
		reference,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to send reply to message %s: %w", messageID, err)
	}
	return nil
}

// DeferInteraction acknowledges an interaction; the response is filled in later with EditInteractionResponse
func (c *DiscordClient) DeferInteraction(ctx context.Context, interaction *discordgo.Interaction) error {
	err := c.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to defer interaction %s: %w", interaction.ID, err)
	}
	return nil
}

// RespondInteraction answers an interaction immediately
func (c *DiscordClient) RespondInteraction(
	ctx context.Context,
	interaction *discordgo.Interaction,
	content string,
) error {
	err := c.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: utils.TruncateMessage(content),
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to respond to interaction %s: %w", interaction.ID, err)
	}
	return nil
}

// EditInteractionResponse replaces the content of a deferred interaction response
func (c *DiscordClient) EditInteractionResponse(
	ctx context.Context,
	interaction *discordgo.Interaction,
	content string,
) error {
	content = utils.TruncateMessage(content)
	_, err := c.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
		Content: &content,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit interaction response %s: %w", interaction.ID, err)
	}
	return nil
}

// RegisterGuildCommands replaces the guild's application commands with the given set
func (c *DiscordClient) RegisterGuildCommands(
	ctx context.Context,
	appID, guildID string,
	commands []*discordgo.ApplicationCommand,
) error {
	_, err := c.session.ApplicationCommandBulkOverwrite(appID, guildID, commands, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to register commands for guild %s: %w", guildID, err)
	}
	return nil
}
