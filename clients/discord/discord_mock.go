package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) SendReply(ctx context.Context, channelID, guildID, messageID, content string) error {
	args := m.Called(ctx, channelID, guildID, messageID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) DeferInteraction(ctx context.Context, interaction *discordgo.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockDiscordClient) RespondInteraction(
	ctx context.Context,
	interaction *discordgo.Interaction,
	content string,
) error {
	args := m.Called(ctx, interaction, content)
	return args.Error(0)
}

func (m *MockDiscordClient) EditInteractionResponse(
	ctx context.Context,
	interaction *discordgo.Interaction,
	content string,
) error {
	args := m.Called(ctx, interaction, content)
	return args.Error(0)
}

func (m *MockDiscordClient) RegisterGuildCommands(
	ctx context.Context,
	appID, guildID string,
	commands []*discordgo.ApplicationCommand,
) error {
	args := m.Called(ctx, appID, guildID, commands)
	return args.Error(0)
}
