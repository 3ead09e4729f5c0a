package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/bwmarrin/discordgo"

	"dgiibot/clients"
	"dgiibot/config"
	"dgiibot/core"
	"dgiibot/core/log"
	"dgiibot/middleware"
	"dgiibot/models"
	"dgiibot/usecases"
	"dgiibot/usecases/status"
)

type DiscordEventsHandler struct {
	discordSDKClient  *discordgo.Session
	discordClient     clients.DiscordClient
	completionUseCase usecases.CompletionUseCaseInterface
	// statusUseCase is nil when /dgii_status is disabled
	statusUseCase usecases.StatusUseCaseInterface
	alerts        *middleware.ErrorAlertMiddleware
	discordConfig config.DiscordConfig
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	discordClient clients.DiscordClient,
	completionUseCase usecases.CompletionUseCaseInterface,
	statusUseCase usecases.StatusUseCaseInterface,
	alerts *middleware.ErrorAlertMiddleware,
	discordConfig config.DiscordConfig,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient:  session,
		discordClient:     discordClient,
		completionUseCase: completionUseCase,
		statusUseCase:     statusUseCase,
		alerts:            alerts,
		discordConfig:     discordConfig,
	}

	if session != nil {
		session.AddHandler(handler.handleReadyEvent)
		session.AddHandler(handler.handleMessageCreatedEvent)
		if statusUseCase != nil {
			session.AddHandler(handler.handleInteractionCreatedEvent)
		}

		session.Identify.Intents = discordgo.IntentsGuilds |
			discordgo.IntentsGuildMessages |
			discordgo.IntentsMessageContent
	}

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Info("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	if err := h.discordSDKClient.Close(); err != nil {
		log.Error("❌ Failed to close Discord session", "error", err)
	}
}

// RegisterCommands overwrites the guild's slash commands with /dgii_status.
// Nothing is registered when the command is disabled.
func (h *DiscordEventsHandler) RegisterCommands(ctx context.Context) error {
	if h.statusUseCase == nil {
		log.Info("⏭️ Status command disabled - skipping command registration")
		return nil
	}

	log.Info("📋 Started refreshing application (/) commands", "guild_id", h.discordConfig.GuildID)
	err := h.discordClient.RegisterGuildCommands(
		ctx,
		h.discordConfig.ClientID,
		h.discordConfig.GuildID,
		[]*discordgo.ApplicationCommand{StatusCommandDefinition()},
	)
	if err != nil {
		return err
	}

	log.Info("✅ Successfully reloaded application (/) commands")
	return nil
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	log.Info("🤖 Bot is online", "user", r.User.String(), "guilds", len(r.Guilds))
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	event := mapToMessageEvent(core.NewID("evt"), botUserID(s), m)
	h.alerts.WrapEventHandler("MessageCreate", func() error {
		return h.processMessageEvent(context.Background(), event)
	})()
}

// handleInteractionCreatedEvent handles slash command invocations
func (h *DiscordEventsHandler) handleInteractionCreatedEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != StatusCommandName {
		return
	}

	eventID := core.NewID("evt")
	h.alerts.WrapEventHandler("InteractionCreate", func() error {
		return h.processStatusInteraction(context.Background(), eventID, i.Interaction)
	})()
}

func (h *DiscordEventsHandler) processMessageEvent(ctx context.Context, event models.MessageEvent) error {
	maybeReply := h.completionUseCase.ProcessMessageEvent(ctx, event)
	reply, ok := maybeReply.Get()
	if !ok {
		return nil
	}

	if err := h.discordClient.SendReply(ctx, event.ChannelID, event.GuildID, event.MessageID, reply.Content); err != nil {
		return fmt.Errorf("failed to reply to message %s: %w", event.MessageID, err)
	}
	return nil
}

func (h *DiscordEventsHandler) processStatusInteraction(
	ctx context.Context,
	eventID string,
	interaction *discordgo.Interaction,
) error {
	log.Info("📨 Discord interaction received",
		"event_id", eventID, "command", StatusCommandName, "guild_id", interaction.GuildID)

	command, err := mapToStatusCommand(eventID, interactionUserID(interaction), interaction.ApplicationCommandData())
	if err != nil {
		replyErr := h.sendInteractionReply(ctx, interaction, models.Reply{Content: status.ReplyUpstreamError})
		if replyErr != nil {
			log.Error("❌ Failed to answer invalid interaction", "event_id", eventID, "error", replyErr)
		}
		return fmt.Errorf("failed to map status command: %w", err)
	}

	ack := func(ctx context.Context) error {
		return h.discordClient.DeferInteraction(ctx, interaction)
	}
	reply := h.statusUseCase.ProcessStatusCommand(ctx, command, ack)

	return h.sendInteractionReply(ctx, interaction, reply)
}

func (h *DiscordEventsHandler) sendInteractionReply(
	ctx context.Context,
	interaction *discordgo.Interaction,
	reply models.Reply,
) error {
	if reply.Deferred {
		return h.discordClient.EditInteractionResponse(ctx, interaction, reply.Content)
	}
	return h.discordClient.RespondInteraction(ctx, interaction, reply.Content)
}

// mapToMessageEvent maps a Discord SDK message event to our domain model
func mapToMessageEvent(eventID, botUserID string, m *discordgo.MessageCreate) models.MessageEvent {
	mentionsBot := botUserID != "" && slices.ContainsFunc(m.Mentions, func(user *discordgo.User) bool {
		return user != nil && user.ID == botUserID
	})

	return models.MessageEvent{
		EventID:     eventID,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		AuthorID:    m.Author.ID,
		AuthorName:  m.Author.Username,
		Content:     m.Content,
		IsFromBot:   m.Author.Bot,
		MentionsBot: mentionsBot,
	}
}

func botUserID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

func interactionUserID(interaction *discordgo.Interaction) string {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User.ID
	}
	if interaction.User != nil {
		return interaction.User.ID
	}
	return ""
}
