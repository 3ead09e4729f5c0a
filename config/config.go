package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"dgiibot/clients/dgii"
	"dgiibot/core/log"
)

const defaultHTTPTimeout = 60 * time.Second

type DiscordConfig struct {
	BotToken string
	ClientID string
	GuildID  string
}

// IsConfigured returns true if everything needed to register guild commands is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.ClientID != "" &&
		c.GuildID != ""
}

type CompletionConfig struct {
	EndpointURL string
	// RequireMention restricts the relay to messages that mention the bot
	RequireMention bool
}

type DGIIConfig struct {
	APIKey  string
	BaseURL string
	// CommandEnabled registers and serves /dgii_status
	CommandEnabled bool
}

// IsConfigured returns true if the status API key is present
func (c DGIIConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type AlertConfig struct {
	SlackWebhookURL string
	LogsURL         string
}

// IsConfigured returns true if Slack alerting is enabled
func (c AlertConfig) IsConfigured() bool {
	return c.SlackWebhookURL != ""
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Port        string // Optional, health server is disabled when empty
	HTTPTimeout time.Duration

	DiscordConfig    DiscordConfig
	CompletionConfig CompletionConfig
	DGIIConfig       DGIIConfig
	AlertConfig      AlertConfig
}

// LoadConfig reads configuration from the environment after loading envFiles
// (".env" when none are given).
func LoadConfig(envFiles ...string) (*AppConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn("⚠️ Could not load .env file, continuing with system env vars", "error", err)
	}

	botToken, err := getEnvRequired("DISCORD_TOKEN")
	if err != nil {
		return nil, err
	}

	endpointURL, err := getEnvRequired("API_ENDPOINT")
	if err != nil {
		return nil, err
	}

	requireMention, err := getEnvBool("REQUIRE_MENTION", true)
	if err != nil {
		return nil, err
	}

	commandEnabled, err := getEnvBool("ENABLE_STATUS_COMMAND", true)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Environment: getEnvWithDefault("ENVIRONMENT", "dev"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		Port:        os.Getenv("PORT"),
		HTTPTimeout: httpTimeout,

		DiscordConfig: DiscordConfig{
			BotToken: botToken,
			ClientID: os.Getenv("CLIENT_ID"),
			GuildID:  os.Getenv("GUILD_ID"),
		},

		CompletionConfig: CompletionConfig{
			EndpointURL:    endpointURL,
			RequireMention: requireMention,
		},

		DGIIConfig: DGIIConfig{
			APIKey:         os.Getenv("DGII_API_KEY"),
			BaseURL:        getEnvWithDefault("DGII_BASE_URL", dgii.DefaultBaseURL),
			CommandEnabled: commandEnabled,
		},

		AlertConfig: AlertConfig{
			SlackWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
			LogsURL:         os.Getenv("SERVER_LOGS_URL"),
		},
	}

	if config.DGIIConfig.CommandEnabled {
		if !config.DiscordConfig.IsConfigured() {
			return nil, fmt.Errorf("CLIENT_ID and GUILD_ID are required when ENABLE_STATUS_COMMAND=true")
		}
		log.Info("✅ /dgii_status command enabled", "guild_id", config.DiscordConfig.GuildID)
		if !config.DGIIConfig.IsConfigured() {
			log.Warn("⚠️ DGII_API_KEY not set - /dgii_status will answer with a configuration message")
		}
	} else {
		log.Info("⚠️ /dgii_status command disabled")
	}

	if config.CompletionConfig.RequireMention {
		log.Info("✅ Completion relay answers messages that mention the bot")
	} else {
		log.Info("✅ Completion relay answers every message")
	}

	if !config.AlertConfig.IsConfigured() {
		log.Info("⚠️ Slack alerting not configured - error alerts will only be logged")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return parsed, nil
}
