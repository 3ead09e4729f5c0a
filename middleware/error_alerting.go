package middleware

import (
	"context"
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"github.com/slack-go/slack"

	"dgiibot/core/log"
)

const alertTimeout = 10 * time.Second

type SlackAlertConfig struct {
	WebhookURL  string
	Environment string
	AppName     string
	LogsURL     string
}

type ErrorAlertMiddleware struct {
	config        SlackAlertConfig
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.Mutex
	alertCooldown time.Duration
	// pending tracks in-flight webhook posts so shutdown and tests can wait on them
	pending sync.WaitGroup
}

func NewErrorAlertMiddleware(config SlackAlertConfig) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute, // same error alerts at most once per 10min
	}
}

// WrapEventHandler wraps a gateway event handler: panics are recovered and
// both panics and returned errors are alerted.
func (m *ErrorAlertMiddleware) WrapEventHandler(eventName string, handler func() error) func() {
	return func() {
		defer m.recoverAndAlert(fmt.Sprintf("Discord event: %s", eventName))

		if err := handler(); err != nil {
			m.AlertOnError(err, fmt.Sprintf("Discord event: %s", eventName))
		}
	}
}

// WrapBackgroundTask wraps a one-off task run outside an event, e.g. command registration
func (m *ErrorAlertMiddleware) WrapBackgroundTask(taskName string, task func() error) func() error {
	return func() error {
		defer m.recoverAndAlert(fmt.Sprintf("Background task: %s", taskName))

		if err := task(); err != nil {
			m.AlertOnError(err, fmt.Sprintf("Background task: %s", taskName))
			return err
		}
		return nil
	}
}

// AlertOnError logs err and posts an alert unless the same error was alerted within the cooldown
func (m *ErrorAlertMiddleware) AlertOnError(err error, context string) {
	errorMsg := fmt.Sprintf("%s: %v", context, err)
	log.Error("❌ "+context, "error", err)

	hash := fmt.Sprintf("%x", md5.Sum([]byte(errorMsg)))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if lastAlert, exists := m.alertedErrors[hash]; exists {
		if time.Since(lastAlert) < m.alertCooldown {
			return
		}
	}

	m.sendAsync(errorMsg, context)
	m.alertedErrors[hash] = time.Now()
}

// Wait blocks until all in-flight alerts are delivered or dropped
func (m *ErrorAlertMiddleware) Wait() {
	m.pending.Wait()
}

func (m *ErrorAlertMiddleware) recoverAndAlert(context string) {
	if r := recover(); r != nil {
		errorMsg := fmt.Sprintf("%s: PANIC - %v", context, r)
		log.Error("❌ " + errorMsg)
		m.sendAsync(errorMsg, context+" (PANIC)")
	}
}

func (m *ErrorAlertMiddleware) sendAsync(errorMsg, context string) {
	if m.config.WebhookURL == "" {
		return
	}
	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		m.sendSlackAlert(errorMsg, context)
	}()
}

func (m *ErrorAlertMiddleware) sendSlackAlert(errorMsg, alertContext string) {
	envPrefix := ""
	if m.config.Environment == "dev" {
		envPrefix = "[dev] "
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(
			slack.PlainTextType,
			fmt.Sprintf("🚨 %s[%s] Error Alert", envPrefix, m.config.AppName),
			true,
			false,
		)),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Service:* %s", m.config.AppName), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Environment:* %s", m.config.Environment), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Context:* %s", alertContext), false, false),
		}, nil),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Error:*\n```%s```", errorMsg), false, false),
			nil,
			nil,
		),
	}
	if m.config.LogsURL != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("🔗 <%s|View Logs>", m.config.LogsURL), false, false),
			nil,
			nil,
		))
	}

	ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
	defer cancel()

	err := slack.PostWebhookContext(ctx, m.config.WebhookURL, &slack.WebhookMessage{
		Text:   errorMsg,
		Blocks: &slack.Blocks{BlockSet: blocks},
	})
	if err != nil {
		log.Error("❌ Failed to send Slack alert", "error", err)
	}
}
