package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jessevdk/go-flags"

	completionclient "dgiibot/clients/completion"
	dgiiclient "dgiibot/clients/dgii"
	discordclient "dgiibot/clients/discord"
	"dgiibot/config"
	"dgiibot/core/log"
	"dgiibot/handlers"
	"dgiibot/middleware"
	"dgiibot/usecases"
	"dgiibot/usecases/completion"
	"dgiibot/usecases/status"
)

type Options struct {
	EnvFiles                []string `long:"env-file" description:"Load environment variables from this file (repeatable, defaults to .env)"`
	LogLevel                string   `long:"log-level" description:"Log level override (debug, info, warn, error)"`
	SkipCommandRegistration bool     `long:"skip-command-registration" description:"Do not overwrite the guild's slash commands on startup"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Error("❌ Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFiles...)
	if err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.AlertConfig.SlackWebhookURL,
		Environment: cfg.Environment,
		AppName:     "dgiibot",
		LogsURL:     cfg.AlertConfig.LogsURL,
	})

	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	discordClient := discordclient.NewDiscordClient(session)
	completionClient := completionclient.NewCompletionClient(cfg.CompletionConfig.EndpointURL, cfg.HTTPTimeout)
	completionUseCase := completion.NewCompletionUseCase(completionClient, cfg.CompletionConfig.RequireMention)

	var statusUseCase usecases.StatusUseCaseInterface
	if cfg.DGIIConfig.CommandEnabled {
		statusClient := dgiiclient.NewStatusClient(cfg.DGIIConfig.BaseURL, cfg.DGIIConfig.APIKey, cfg.HTTPTimeout)
		statusUseCase = status.NewStatusUseCase(statusClient)
		if !cfg.DGIIConfig.IsConfigured() {
			log.Warn("⚠️ DGII_API_KEY is not set, /dgii_status will answer with a configuration error")
		}
	}

	discordHandler := handlers.NewDiscordEventsHandler(
		session,
		discordClient,
		completionUseCase,
		statusUseCase,
		alertMiddleware,
		cfg.DiscordConfig,
	)

	if !opts.SkipCommandRegistration {
		err := alertMiddleware.WrapBackgroundTask("RegisterCommands", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
			defer cancel()
			return discordHandler.RegisterCommands(ctx)
		})()
		if err != nil {
			log.Error("❌ Failed to register application commands", "error", err)
		}
	}

	if err := discordHandler.StartBot(); err != nil {
		return err
	}

	var server *http.Server
	if cfg.Port != "" {
		server = &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handlers.NewHealthRouter(),
			ReadHeaderTimeout: 30 * time.Second,
		}
	}

	return handleGracefulShutdown(discordHandler, server, alertMiddleware)
}

func handleGracefulShutdown(
	discordHandler *handlers.DiscordEventsHandler,
	server *http.Server,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if server != nil {
		go func() {
			log.Info("✅ Health server listening", "addr", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("❌ Health server error", "error", err)
			}
		}()
	}

	<-stop
	log.Info("🛑 Shutdown signal received, cleaning up...")

	discordHandler.StopBot()

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("❌ Health server shutdown error", "error", err)
			return err
		}
	}

	alertMiddleware.Wait()
	log.Info("✅ Bot stopped gracefully")
	return nil
}
